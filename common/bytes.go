// Copyright 2021 The Erigon contributors
// SPDX-License-Identifier: Apache-2.0

package common

// Copy returns a freshly allocated copy of b, or nil if b is nil.
func Copy(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// Concat returns a freshly allocated concatenation of the given slices.
func Concat(slices ...[]byte) []byte {
	n := 0
	for _, s := range slices {
		n += len(s)
	}
	out := make([]byte, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Slice returns b[offset:offset+length], end-exclusive. The caller
// guarantees offset+length <= len(b).
func Slice(b []byte, offset, length int) []byte {
	return b[offset : offset+length]
}

// ToBytes32 interprets b as a 32-byte value: left-padded with zero
// bytes if shorter, or the first 32 bytes if longer.
func ToBytes32(b []byte) Hash {
	return BytesToHash(b)
}

// RightPad32 right-pads b with zero bytes to 32 bytes. Used when
// comparing an inlined (< 32 byte) node's raw RLP encoding against a
// parent's stored 32-byte reference slot: the source pads short node
// references on the right, not the left, so this must not be confused
// with ToBytes32.
func RightPad32(b []byte) Hash {
	var h Hash
	copy(h[:], b)
	return h
}
