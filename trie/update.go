// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"github.com/erigontech/mptproof/common"
)

// Update computes the root hash that results from inserting or
// overwriting (key, value) in the trie rooted at root, given a proof
// of the path from root toward key. The proof must reach either key
// itself or a dead end (see WalkNodePath); an insufficient proof
// produces an inconsistent fold whose result simply fails subsequent
// verification, per spec.
func Update(key, value, proof []byte, root common.Hash) (common.Hash, error) {
	nodes, err := ParseProof(proof)
	if err != nil {
		return common.Hash{}, err
	}
	keyNibbles := common.ExpandNibbles(key)

	pathLength, keyRemainder, _, err := WalkNodePath(nodes, keyNibbles, root)
	if err != nil {
		return common.Hash{}, err
	}

	newTail, err := buildReplacementTail(nodes[pathLength-1], keyRemainder, value)
	if err != nil {
		return common.Hash{}, err
	}

	newPath := make([]Node, 0, pathLength-1+len(newTail))
	newPath = append(newPath, nodes[:pathLength-1]...)
	newPath = append(newPath, newTail...)

	return getUpdatedTrieRoot(newPath, keyNibbles)
}

// buildReplacementTail implements the four (well, five, counting the
// empty-trie bootstrap) update cases of spec.md §4.4.3, returning at
// most 3 replacement nodes for the tail of the path.
func buildReplacementTail(last Node, keyRemainder, value []byte) ([]Node, error) {
	if len(last.Decoded) == 0 {
		// Bootstrap: the proof supplied only the RLP NULL sentinel,
		// meaning the trie is entirely empty. The new root is a
		// single fresh leaf.
		return []Node{MakeLeafNode(keyRemainder, value)}, nil
	}

	kind, err := ClassifyNode(last)
	if err != nil {
		return nil, err
	}

	if len(keyRemainder) == 0 {
		switch kind {
		case KindLeaf:
			// (A) exact hit on a leaf: overwrite its value.
			lastKey, err := NodeKey(last)
			if err != nil {
				return nil, err
			}
			return []Node{MakeLeafNode(lastKey, value)}, nil
		case KindBranch:
			// (B) exact hit on a branch's own value slot.
			return []Node{EditBranchValue(last, value)}, nil
		}
		// An Extension can never be the landing node with an empty
		// remainder: extensions never carry a value of their own.
		return nil, ErrInvalidProof
	}

	if kind == KindBranch {
		// (C) branch reached with unconsumed key: the walk already
		// consumed the slot nibble finding this branch's empty child,
		// so keyRemainder is entirely the new leaf's own key. The fold
		// recovers the consumed slot nibble from the outer key buffer.
		return []Node{last, MakeLeafNode(keyRemainder, value)}, nil
	}

	// (D) leaf or extension reached with unconsumed key: split.
	return splitLeafOrExtension(last, kind, keyRemainder, value)
}

func splitLeafOrExtension(last Node, kind NodeKind, keyRemainder, value []byte) ([]Node, error) {
	lastKey, err := NodeKey(last)
	if err != nil {
		return nil, err
	}
	lastValue, err := NodeValue(last)
	if err != nil {
		return nil, err
	}

	s := common.SharedNibbles(lastKey, keyRemainder)

	var tail []Node
	if s > 0 {
		// Placeholder extension over the shared nibbles: its value
		// field is a throwaway marker, rewritten to the branch's real
		// reference during the fold.
		tail = append(tail, MakeExtensionNode(lastKey[:s], common.Keccak256(value)))
		lastKey = lastKey[s:]
		keyRemainder = keyRemainder[s:]
	}

	branch := MakeEmptyBranchNode()
	if len(lastKey) == 0 {
		branch = EditBranchValue(branch, lastValue)
	} else {
		b, rest := lastKey[0], lastKey[1:]
		if len(rest) > 0 || kind == KindLeaf {
			leaf := MakeLeafNode(rest, lastValue)
			branch = EditBranchIndex(branch, int(b), NodeHash(leaf.Encoded))
		} else {
			// Extension whose remaining tail is now empty: lastValue
			// is already the child reference to reuse verbatim.
			branch = EditBranchIndex(branch, int(b), lastValue)
		}
	}

	if len(keyRemainder) == 0 {
		branch = EditBranchValue(branch, value)
		tail = append(tail, branch)
	} else {
		// keyRemainder[0] is this new branch's slot for the inserted
		// leaf; the fold recovers it from the key buffer, so the leaf
		// itself is built from the rest of the key only.
		newLeaf := MakeLeafNode(keyRemainder[1:], value)
		tail = append(tail, branch, newLeaf)
	}
	return tail, nil
}

// getUpdatedTrieRoot folds newPath from tail to root, rewriting each
// ancestor's child reference to match the hash produced below it, and
// returns the resulting root hash.
func getUpdatedTrieRoot(newPath []Node, key []byte) (common.Hash, error) {
	var previousHash []byte

	for i := len(newPath) - 1; i >= 0; i-- {
		node := newPath[i]
		kind, err := ClassifyNode(node)
		if err != nil {
			return common.Hash{}, err
		}

		switch kind {
		case KindLeaf:
			nodeKey, err := NodeKey(node)
			if err != nil {
				return common.Hash{}, err
			}
			key = key[:len(key)-len(nodeKey)]
			// Leaves have no child reference to rewrite; emitted as-is.

		case KindExtension:
			nodeKey, err := NodeKey(node)
			if err != nil {
				return common.Hash{}, err
			}
			key = key[:len(key)-len(nodeKey)]
			if len(previousHash) != 0 {
				node = MakeExtensionNode(nodeKey, previousHash)
			}

		case KindBranch:
			if len(previousHash) != 0 {
				b := key[len(key)-1]
				key = key[:len(key)-1]
				node = EditBranchIndex(node, int(b), previousHash)
			}
		}

		newPath[i] = node
		previousHash = NodeHash(node.Encoded)
	}

	return common.Keccak256Hash(newPath[0].Encoded), nil
}
