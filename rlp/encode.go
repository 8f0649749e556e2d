// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import "math/bits"

// EncodeBytes returns the canonical RLP string encoding of b: the
// single-byte fast path when b is exactly one byte below 0x80, a
// short-string header for payloads under 56 bytes, and a long-string
// header (big-endian length) otherwise.
func EncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < strSingleMax {
		return []byte{b[0]}
	}
	header := stringHeader(len(b))
	out := make([]byte, 0, len(header)+len(b))
	out = append(out, header...)
	out = append(out, b...)
	return out
}

// EncodeList concatenates the already-encoded child items and prepends
// the canonical list header for their total length.
func EncodeList(items [][]byte) []byte {
	total := 0
	for _, it := range items {
		total += len(it)
	}
	header := listHeader(total)
	out := make([]byte, 0, len(header)+total)
	out = append(out, header...)
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func stringHeader(payloadLen int) []byte {
	if payloadLen < 56 {
		return []byte{strSingleMax + byte(payloadLen)}
	}
	lenBytes := bigEndianMinimal(uint64(payloadLen))
	header := make([]byte, 0, 1+len(lenBytes))
	header = append(header, strShortMax+byte(len(lenBytes)))
	header = append(header, lenBytes...)
	return header
}

func listHeader(payloadLen int) []byte {
	if payloadLen < 56 {
		return []byte{0xC0 + byte(payloadLen)}
	}
	lenBytes := bigEndianMinimal(uint64(payloadLen))
	header := make([]byte, 0, 1+len(lenBytes))
	header = append(header, listShortMax+byte(len(lenBytes)))
	header = append(header, lenBytes...)
	return header
}

// bigEndianMinimal returns the minimal big-endian byte representation
// of n (no leading zero byte), used for long-form RLP length headers.
func bigEndianMinimal(n uint64) []byte {
	nbytes := (bits.Len64(n) + 7) / 8
	if nbytes == 0 {
		nbytes = 1
	}
	out := make([]byte, nbytes)
	for i := nbytes - 1; i >= 0; i-- {
		out[i] = byte(n)
		n >>= 8
	}
	return out
}
