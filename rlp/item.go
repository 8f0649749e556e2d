// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

// Package rlp implements the canonical Recursive Length Prefix
// encoding used by Merkle-Patricia Trie nodes: decoding a byte string
// into a tree of byte-string and list items, and encoding a list of
// byte strings back into its canonical (shortest) form.
package rlp

// Kind distinguishes the two RLP shapes: a byte string (possibly
// empty) or an ordered sequence of items.
type Kind uint8

const (
	KindString Kind = iota
	KindList
)

// Item is a decoded RLP value. It is a view into the buffer it was
// decoded from: HeaderLen and PayloadLen locate the header and payload
// within Buf without copying either.
type Item struct {
	Buf        []byte
	Kind       Kind
	HeaderLen  int
	PayloadLen int
}

// end returns the offset one past the end of the item's encoding
// within Buf.
func (it Item) end() int { return it.HeaderLen + it.PayloadLen }
