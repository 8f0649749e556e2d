// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"fmt"

	"github.com/erigontech/mptproof/rlp"
)

// ParseProof decodes an RLP-encoded proof — an outer list of
// RLP-encoded nodes — into an ordered sequence of Nodes, root first.
// Each element of the outer list is itself expected to decode into a
// node of 2 or 17 items; anything else is ErrMalformedProof, except an
// element that is the RLP NULL sentinel, which becomes a Node with no
// decoded items.
func ParseProof(rlpProof []byte) ([]Node, error) {
	outer, err := rlp.ToItem(rlpProof)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}
	elements, err := rlp.ToList(outer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRLP, err)
	}

	nodes := make([]Node, 0, len(elements))
	for i, el := range elements {
		encoded := rlp.ToRlpBytes(el)
		if el.Kind == rlp.KindString {
			// eth_getProof-style proofs wrap each node's encoding in
			// an outer RLP string; unwrap it to get at the node's own
			// list encoding.
			encoded, err = rlp.ToBytes(el)
			if err != nil {
				return nil, wrapAt(ErrMalformedRLP, i, err.Error())
			}
		}
		if len(encoded) == 0 {
			// The RLP NULL sentinel standing in for an entirely absent
			// node (an empty trie, or an explicitly proven absent
			// branch child materialized as its own proof element).
			nodes = append(nodes, Node{Encoded: nullSentinel})
			continue
		}
		n, err := decodeNode(encoded)
		if err != nil {
			return nil, wrapAt(ErrMalformedProof, i, err.Error())
		}
		if len(n.Decoded) != 2 && len(n.Decoded) != branchWidth {
			return nil, wrapAt(ErrMalformedProof, i, fmt.Sprintf("%d decoded items", len(n.Decoded)))
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
