// Copyright 2021 The Erigon contributors
// SPDX-License-Identifier: Apache-2.0

package common

import "encoding/hex"

// HashLength is the number of bytes in a keccak-256 digest.
const HashLength = 32

// Hash is a 32-byte trie root or node reference.
type Hash [HashLength]byte

func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) String() string { return "0x" + hex.EncodeToString(h[:]) }

// BytesToHash left-pads b with zero bytes if it is shorter than 32
// bytes, and takes the first 32 bytes if it is longer.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[:HashLength]
	}
	copy(h[HashLength-len(b):], b)
	return h
}
