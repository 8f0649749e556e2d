// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"bytes"

	"github.com/erigontech/mptproof/common"
)

// nullSentinel is the RLP encoding of the empty string: the reference
// stored in an empty branch slot, and (as a whole proof of one
// element) the placeholder representing an entirely empty trie.
var nullSentinel = []byte{0x80}

// WalkNodePath walks proof, following the nibbles of key from root,
// and returns how far the walk got: the number of proof nodes
// consulted, the unconsumed suffix of key, and whether the walk ended
// at a dead end: a reference that resolves to the RLP NULL sentinel,
// an extension whose key shares no nibble with the remaining key, or
// any leaf (whether or not its key matched the remaining key).
//
// key must already be nibble-expanded (one nibble per byte).
func WalkNodePath(proof []Node, key []byte, root common.Hash) (pathLength int, keyRemainder []byte, isDeadEnd bool, err error) {
	if len(proof) == 0 {
		return 0, key, false, ErrInvalidRoot
	}

	currentRef := root
	cursor := 0

	for idx, node := range proof {
		if idx == 0 {
			if common.Keccak256Hash(node.Encoded) != root {
				return 0, nil, false, ErrInvalidRoot
			}
		} else {
			var ok bool
			if len(node.Encoded) >= common.HashLength {
				ok = common.Keccak256Hash(node.Encoded) == currentRef
			} else {
				ok = common.RightPad32(node.Encoded) == currentRef
			}
			if !ok {
				return 0, nil, false, wrapAt(ErrInvalidProof, idx, "reference mismatch")
			}
		}

		if len(node.Decoded) == 0 {
			// The proof supplied the RLP NULL sentinel itself as a
			// node: an entirely empty trie (or an explicitly proven
			// absent branch child materialized as its own element).
			return idx + 1, key[cursor:], true, nil
		}

		kind, cerr := ClassifyNode(node)
		if cerr != nil {
			return 0, nil, false, cerr
		}

		switch kind {
		case KindBranch:
			if cursor == len(key) {
				return idx + 1, key[cursor:], false, nil
			}
			slot := node.Decoded[key[cursor]]
			cursor++
			id := NodeID(slot)
			if bytes.Equal(id, nullSentinel) {
				return idx + 1, key[cursor:], true, nil
			}
			currentRef = common.RightPad32(id)

		case KindExtension:
			nodeKey, kerr := NodeKey(node)
			if kerr != nil {
				return 0, nil, false, kerr
			}
			remainder := key[cursor:]
			s := common.SharedNibbles(nodeKey, remainder)
			if s == 0 {
				return idx + 1, remainder, true, nil
			}
			id := NodeID(node.Decoded[1])
			currentRef = common.RightPad32(id)
			cursor += s

		case KindLeaf:
			nodeKey, kerr := NodeKey(node)
			if kerr != nil {
				return 0, nil, false, kerr
			}
			remainder := key[cursor:]
			s := common.SharedNibbles(nodeKey, remainder)
			if s == len(nodeKey) && s == len(remainder) {
				cursor += s
			}
			return idx + 1, key[cursor:], true, nil
		}
	}

	return len(proof), key[cursor:], false, nil
}
