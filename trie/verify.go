// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"github.com/erigontech/mptproof/common"
)

// VerifyInclusionProof reports whether proof, rooted at root, proves
// that key maps to value. Structural failures (a proof that cannot be
// interpreted against root at all) are returned as an error rather
// than false; only "the proof is well-formed but disproves inclusion"
// is a plain false.
func VerifyInclusionProof(key, value, proof []byte, root common.Hash) (bool, error) {
	nodes, err := ParseProof(proof)
	if err != nil {
		return false, err
	}
	pathLength, keyRemainder, _, err := WalkNodePath(nodes, common.ExpandNibbles(key), root)
	if err != nil {
		return false, err
	}

	last := nodes[pathLength-1]
	if len(keyRemainder) != 0 {
		return false, nil
	}
	got, err := NodeValue(last)
	if err != nil {
		return false, err
	}
	return common.Equal(got, value), nil
}

// VerifyExclusionProof reports whether proof, rooted at root, proves
// that key does not map to value. This is true either when the walk
// lands exactly on a value that differs from value, or when the walk
// reaches a dead end with unconsumed key nibbles remaining.
//
// Semantic corner (preserved from the source rather than "fixed"):
// when keyRemainder is empty and the value stored at the landing node
// differs from the passed-in value, this returns true even if the
// passed-in value is the empty byte string and the stored value is
// not (or vice versa) — the engine does not special-case "empty value"
// as "absent".
func VerifyExclusionProof(key, value, proof []byte, root common.Hash) (bool, error) {
	nodes, err := ParseProof(proof)
	if err != nil {
		return false, err
	}
	pathLength, keyRemainder, isDeadEnd, err := WalkNodePath(nodes, common.ExpandNibbles(key), root)
	if err != nil {
		return false, err
	}

	last := nodes[pathLength-1]
	if len(keyRemainder) == 0 {
		got, err := NodeValue(last)
		if err != nil {
			return false, err
		}
		return !common.Equal(got, value), nil
	}
	return isDeadEnd, nil
}
