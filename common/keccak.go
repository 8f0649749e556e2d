// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// keccakState wraps sha3.state. In addition to the usual hash methods,
// it also supports Read to get a variable amount of data from the hash
// state. Read is faster than Sum because it doesn't copy the internal
// state.
type keccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

var hasherPool = sync.Pool{
	New: func() any {
		return sha3.NewLegacyKeccak256().(keccakState)
	},
}

// Keccak256 returns the Ethereum-variant keccak-256 digest of data
// (the original Keccak padding, not NIST SHA-3).
func Keccak256(data []byte) []byte {
	h := hasherPool.Get().(keccakState)
	h.Reset()
	defer hasherPool.Put(h)

	h.Write(data)
	out := make([]byte, HashLength)
	h.Read(out)
	return out
}

// Keccak256Hash is Keccak256 with the result interpreted as a Hash.
func Keccak256Hash(data []byte) Hash {
	var out Hash
	h := hasherPool.Get().(keccakState)
	h.Reset()
	defer hasherPool.Put(h)

	h.Write(data)
	h.Read(out[:])
	return out
}
