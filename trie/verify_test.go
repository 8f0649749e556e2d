// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/mptproof/common"
)

func TestVerifyInclusionProofSingleLeaf(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	key := []byte{0x12, 0x34}
	value := []byte("v1")
	leaf := MakeLeafNode(common.ExpandNibbles(key), value)
	root := common.Keccak256Hash(leaf.Encoded)
	proof := singleNodeProof(leaf)

	ok, err := VerifyInclusionProof(key, value, proof, root)
	require.NoError(err)
	assert.True(ok)

	ok, err = VerifyInclusionProof(key, []byte("wrong"), proof, root)
	require.NoError(err)
	assert.False(ok)
}

func TestVerifyInclusionProofFailsOnUnconsumedKey(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	leaf := MakeLeafNode(common.ExpandNibbles([]byte{0x12}), []byte("v1"))
	root := common.Keccak256Hash(leaf.Encoded)
	proof := singleNodeProof(leaf)

	ok, err := VerifyInclusionProof([]byte{0x12, 0x34}, []byte("v1"), proof, root)
	require.NoError(err)
	assert.False(ok)
}

func TestVerifyExclusionProofByDeadEnd(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	leaf := MakeLeafNode(common.ExpandNibbles([]byte{0x12, 0x34}), []byte("v1"))
	root := common.Keccak256Hash(leaf.Encoded)
	proof := singleNodeProof(leaf)

	ok, err := VerifyExclusionProof([]byte{0x12, 0x99}, []byte("anything"), proof, root)
	require.NoError(err)
	assert.True(ok)
}

func TestVerifyExclusionProofByValueMismatch(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	leaf := MakeLeafNode(common.ExpandNibbles([]byte{0x12, 0x34}), []byte("v1"))
	root := common.Keccak256Hash(leaf.Encoded)
	proof := singleNodeProof(leaf)

	ok, err := VerifyExclusionProof([]byte{0x12, 0x34}, []byte("v2"), proof, root)
	require.NoError(err)
	assert.True(ok)

	ok, err = VerifyExclusionProof([]byte{0x12, 0x34}, []byte("v1"), proof, root)
	require.NoError(err)
	assert.False(ok)
}

func TestVerifyOnEmptyTrie(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	root := common.Keccak256Hash(nullSentinel)
	proof := singleNodeProof(Node{Encoded: nullSentinel})

	ok, err := VerifyExclusionProof([]byte{0xAB}, []byte("v"), proof, root)
	require.NoError(err)
	assert.True(ok)
}
