// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexPrefixRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		key    []byte
		isLeaf bool
	}{
		{"leaf-even", []byte{1, 2, 3, 4}, true},
		{"leaf-odd", []byte{1, 2, 3}, true},
		{"extension-even", []byte{1, 2, 3, 4}, false},
		{"extension-odd", []byte{1, 2, 3}, false},
		{"empty-leaf", []byte{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert := assert.New(t)
			packed := AddHexPrefix(c.key, c.isLeaf)
			nibbles := make([]byte, 0, len(packed)*2)
			for _, b := range packed {
				nibbles = append(nibbles, b>>4, b&0x0F)
			}
			assert.Equal(c.key, RemoveHexPrefix(nibbles))
		})
	}
}

func TestHexPrefixDistinguishesLeafFromExtension(t *testing.T) {
	assert := assert.New(t)
	leaf := AddHexPrefix([]byte{1, 2}, true)
	ext := AddHexPrefix([]byte{1, 2}, false)
	assert.NotEqual(leaf[0]>>4, ext[0]>>4)
	assert.True(leaf[0]>>4 == 2 || leaf[0]>>4 == 3)
	assert.True(ext[0]>>4 == 0 || ext[0]>>4 == 1)
}
