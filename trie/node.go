// Copyright 2014 The go-ethereum Authors
// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/erigontech/mptproof/common"
	"github.com/erigontech/mptproof/rlp"
)

// NodeKind is the tagged variant of a trie node: a branch has 17
// decoded items, a leaf or extension has 2 (distinguished by their
// path's hex-prefix nibble).
type NodeKind uint8

const (
	KindBranch NodeKind = iota
	KindExtension
	KindLeaf
)

// branchWidth is the number of decoded items in a branch node: 16
// child slots plus one trailing value slot.
const branchWidth = 17

// Node carries both representations spec.md requires: the canonical
// RLP encoding, and its decoded list of child items. It is an
// immutable value; every operation below returns a new Node rather
// than mutating one in place.
type Node struct {
	Encoded []byte
	Decoded []rlp.Item
}

// decodeNode parses a single node's RLP encoding into its (encoded,
// decoded) pair, as used by ParseProof and wherever a child reference
// must be dereferenced from raw bytes.
func decodeNode(encoded []byte) (Node, error) {
	item, err := rlp.ToItem(encoded)
	if err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}
	decoded, err := rlp.ToList(item)
	if err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}
	return Node{Encoded: encoded, Decoded: decoded}, nil
}

// ClassifyNode returns the node's kind: 17 decoded items is a branch;
// 2 decoded items is a leaf or extension, distinguished by the two
// highest bits of the first nibble of its path.
func ClassifyNode(n Node) (NodeKind, error) {
	switch len(n.Decoded) {
	case branchWidth:
		return KindBranch, nil
	case 2:
		path, err := rlp.ToBytes(n.Decoded[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
		}
		if len(path) == 0 {
			return 0, ErrInvalidNodePrefix
		}
		switch path[0] >> 4 {
		case 0, 1:
			return KindExtension, nil
		case 2, 3:
			return KindLeaf, nil
		default:
			return 0, ErrInvalidNodePrefix
		}
	default:
		return 0, ErrMalformedProof
	}
}

// NodePath returns the nibble-expanded path of a leaf/extension node
// (the raw hex-prefix-encoded path, prefix nibble included).
func NodePath(n Node) ([]byte, error) {
	pathBytes, err := rlp.ToBytes(n.Decoded[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}
	return common.ExpandNibbles(pathBytes), nil
}

// NodeKey returns a leaf/extension node's key: its path with the
// hex-prefix (and any padding nibble) stripped.
func NodeKey(n Node) ([]byte, error) {
	path, err := NodePath(n)
	if err != nil {
		return nil, err
	}
	return RemoveHexPrefix(path), nil
}

// NodeValue returns a node's value: the trailing slot of a branch, or
// the second element of a leaf/extension.
func NodeValue(n Node) ([]byte, error) {
	if len(n.Decoded) == 0 {
		// The RLP NULL sentinel itself: no value is stored here.
		return nil, nil
	}
	last := n.Decoded[len(n.Decoded)-1]
	v, err := rlp.ToBytes(last)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}
	return v, nil
}

// NodeID is the reference a parent stores for a child item: the full
// RLP encoding if it is shorter than 32 bytes (inlined), otherwise the
// item's raw payload bytes (already the 32-byte hash produced by the
// encoder). Converted to a 32-byte reference by the caller via
// common.RightPad32 / common.ToBytes32 as appropriate.
func NodeID(item rlp.Item) []byte {
	enc := rlp.ToRlpBytes(item)
	if len(enc) < common.HashLength {
		return enc
	}
	payload, err := rlp.ToBytes(item)
	if err != nil {
		// A >=32 byte reference slot that isn't a plain string is
		// malformed input; callers detect this via the zero-length
		// result failing subsequent lookups.
		return nil
	}
	return payload
}

// NodeHash is the reference a parent stores for a fully-encoded child
// node: the encoding verbatim if it is shorter than 32 bytes, else its
// keccak-256 hash.
func NodeHash(encoded []byte) []byte {
	if len(encoded) < common.HashLength {
		return common.Copy(encoded)
	}
	return common.Keccak256(encoded)
}

// MakeLeafNode builds a 2-item leaf node from an unprefixed key and a
// value. The value is an opaque byte string, always RLP-string encoded
// (unlike a child reference, it is never eligible for raw embedding).
func MakeLeafNode(key, value []byte) Node {
	path := AddHexPrefix(key, true)
	encoded := rlp.EncodeList([][]byte{
		rlp.EncodeBytes(path),
		rlp.EncodeBytes(value),
	})
	return mustDecode(encoded)
}

// MakeExtensionNode builds a 2-item extension node from an unprefixed
// key and a child reference. childRef follows the node-reference
// policy: if it is under 32 bytes it is the child's own raw RLP
// encoding and is embedded verbatim; if it is exactly 32 bytes it is
// the child's keccak-256 hash and is wrapped as an RLP string.
func MakeExtensionNode(key, childRef []byte) Node {
	path := AddHexPrefix(key, false)
	encoded := rlp.EncodeList([][]byte{
		rlp.EncodeBytes(path),
		encodeReference(childRef),
	})
	return mustDecode(encoded)
}

// encodeReference applies the inline-vs-hash policy to a child
// reference before it is spliced into a parent node's item list.
func encodeReference(ref []byte) []byte {
	if len(ref) < common.HashLength {
		return common.Copy(ref)
	}
	return rlp.EncodeBytes(ref)
}

func mustDecode(encoded []byte) Node {
	n, err := decodeNode(encoded)
	if err != nil {
		// Encoding our own well-formed output can never fail to
		// re-decode; a failure here indicates a codec bug.
		panic(fmt.Sprintf("mpt: freshly encoded node failed to decode: %v", err))
	}
	return n
}

// MakeEmptyBranchNode returns a 17-slot branch with every slot set to
// the RLP empty string.
func MakeEmptyBranchNode() Node {
	empty := rlp.EncodeBytes(nil)
	slots := make([][]byte, branchWidth)
	for i := range slots {
		slots[i] = empty
	}
	return mustDecode(rlp.EncodeList(slots))
}

// EditBranchValue returns a copy of branch with its trailing value
// slot replaced. Like a leaf's value, this is opaque data, always
// RLP-string encoded.
func EditBranchValue(branch Node, value []byte) Node {
	return editBranchSlot(branch, branchWidth-1, rlp.EncodeBytes(value))
}

// EditBranchIndex returns a copy of branch with child slot i replaced
// by a reference to ref, following the same inline-vs-hash policy as
// MakeExtensionNode.
func EditBranchIndex(branch Node, i int, ref []byte) Node {
	return editBranchSlot(branch, i, encodeReference(ref))
}

func editBranchSlot(branch Node, slot int, encodedSlot []byte) Node {
	slots := make([][]byte, branchWidth)
	for i, item := range branch.Decoded {
		if i == slot {
			slots[i] = encodedSlot
			continue
		}
		slots[i] = rlp.ToRlpBytes(item)
	}
	return mustDecode(rlp.EncodeList(slots))
}
