// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"errors"
	"fmt"
)

// Structural failures. These reject the input outright; they are
// never retried or treated as a semantic "not found" outcome.
var (
	// ErrInvalidRoot is returned when the first proof node's hash
	// does not match the caller-supplied root.
	ErrInvalidRoot = errors.New("mpt: first proof node does not hash to root")

	// ErrInvalidProof is returned when a non-root proof node's
	// reference does not match the reference expected by its parent.
	ErrInvalidProof = errors.New("mpt: proof node reference mismatch")

	// ErrMalformedRLP is returned when the RLP codec rejects a node's
	// encoding as inconsistent.
	ErrMalformedRLP = errors.New("mpt: malformed rlp")

	// ErrMalformedProof is returned when a decoded node has neither 2
	// nor 17 elements.
	ErrMalformedProof = errors.New("mpt: node has neither 2 nor 17 decoded items")

	// ErrInvalidNodePrefix is returned when a 2-item node's path does
	// not start with a hex-prefix nibble in {0,1,2,3}.
	ErrInvalidNodePrefix = errors.New("mpt: hex-prefix nibble not in {0,1,2,3}")
)

// nodeIndexError adds the offending proof index to one of the
// sentinels above, so callers can both errors.Is against the sentinel
// and recover the index via errors.As.
type nodeIndexError struct {
	sentinel error
	index    int
	detail   string
}

func (e *nodeIndexError) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("%s (node %d)", e.sentinel, e.index)
	}
	return fmt.Sprintf("%s (node %d): %s", e.sentinel, e.index, e.detail)
}

func (e *nodeIndexError) Unwrap() error { return e.sentinel }

func (e *nodeIndexError) Is(target error) bool {
	return target == e.sentinel
}

func wrapAt(sentinel error, index int, detail string) error {
	return &nodeIndexError{sentinel: sentinel, index: index, detail: detail}
}
