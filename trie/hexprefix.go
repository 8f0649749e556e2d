// Copyright 2021 The Erigon contributors
// SPDX-License-Identifier: Apache-2.0

package trie

import "github.com/erigontech/mptproof/common"

// AddHexPrefix encodes key (a plain nibble sequence) with the
// hex-prefix scheme: prefix nibble 2 or 3 for a leaf, 0 or 1 for an
// extension, +1 for odd nibble-length keys, with a zero pad nibble
// inserted after an even-length prefix. The result is packed to bytes.
func AddHexPrefix(key []byte, isLeaf bool) []byte {
	var base byte
	if isLeaf {
		base = 2
	}

	var prefixed []byte
	if len(key)%2 == 1 {
		prefixed = make([]byte, 0, len(key)+1)
		prefixed = append(prefixed, base+1)
		prefixed = append(prefixed, key...)
	} else {
		prefixed = make([]byte, 0, len(key)+2)
		prefixed = append(prefixed, base, 0)
		prefixed = append(prefixed, key...)
	}
	return common.PackNibbles(prefixed)
}

// RemoveHexPrefix strips the hex-prefix nibble (and pad nibble, for an
// even-length path) from path, an already nibble-expanded slice (one
// nibble per element, prefix nibble first).
func RemoveHexPrefix(path []byte) []byte {
	if len(path) == 0 {
		return path
	}
	if path[0]%2 == 0 {
		// even-parity prefix (0 or 2): one pad nibble follows
		return path[2:]
	}
	return path[1:]
}
