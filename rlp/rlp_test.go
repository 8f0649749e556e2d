// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHex(in string) []byte {
	payload, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	return payload
}

func TestEncodeBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x7f},
		{0x80},
		[]byte("dog"),
		bytes.Repeat([]byte{0x42}, 55),
		bytes.Repeat([]byte{0x42}, 56),
		bytes.Repeat([]byte{0x42}, 1024),
	}
	for i, b := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			enc := EncodeBytes(b)
			item, err := ToItem(enc)
			require.NoError(err)
			assert.Equal(KindString, item.Kind)

			got, err := ToBytes(item)
			require.NoError(err)
			assert.True(bytes.Equal(b, got), "round trip mismatch: want %x got %x", b, got)
		})
	}
}

func TestEncodeBytesCanonicalForm(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]byte{0x00}, EncodeBytes([]byte{0x00}))
	assert.Equal([]byte{0x7f}, EncodeBytes([]byte{0x7f}))
	assert.Equal([]byte{0x80}, EncodeBytes([]byte{}))
	assert.Equal([]byte{0x81, 0x80}, EncodeBytes([]byte{0x80}))
	assert.Equal(decodeHex("83646f67"), EncodeBytes([]byte("dog")))
}

func TestEncodeListRoundTrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	items := [][]byte{
		EncodeBytes([]byte("cat")),
		EncodeBytes([]byte("dog")),
	}
	enc := EncodeList(items)
	item, err := ToItem(enc)
	require.NoError(err)
	assert.Equal(KindList, item.Kind)

	children, err := ToList(item)
	require.NoError(err)
	require.Len(children, 2)

	cat, err := ToBytes(children[0])
	require.NoError(err)
	assert.Equal("cat", string(cat))

	dog, err := ToBytes(children[1])
	require.NoError(err)
	assert.Equal("dog", string(dog))
}

func TestEncodeListLongForm(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var items [][]byte
	for i := 0; i < 20; i++ {
		items = append(items, EncodeBytes(bytes.Repeat([]byte{byte(i)}, 5)))
	}
	enc := EncodeList(items)
	require.True(enc[0] >= 0xF8, "expected long-form list header, got 0x%x", enc[0])

	item, err := ToItem(enc)
	require.NoError(err)
	children, err := ToList(item)
	require.NoError(err)
	assert.Len(children, 20)
}

func TestEmptyStringAndEmptyList(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	strItem, err := ToItem(EncodeBytes(nil))
	require.NoError(err)
	assert.Equal(KindString, strItem.Kind)
	b, err := ToBytes(strItem)
	require.NoError(err)
	assert.Empty(b)

	listItem, err := ToItem(EncodeList(nil))
	require.NoError(err)
	assert.Equal(KindList, listItem.Kind)
	children, err := ToList(listItem)
	require.NoError(err)
	assert.Empty(children)
}

func TestToListRejectsString(t *testing.T) {
	item, err := ToItem(EncodeBytes([]byte("dog")))
	require.NoError(t, err)
	_, err = ToList(item)
	assert.ErrorIs(t, err, ErrNotAList)
}

func TestToBytesRejectsList(t *testing.T) {
	item, err := ToItem(EncodeList([][]byte{EncodeBytes([]byte("dog"))}))
	require.NoError(t, err)
	_, err = ToBytes(item)
	assert.ErrorIs(t, err, ErrNotAString)
}

func TestMalformedNonCanonicalSingleByte(t *testing.T) {
	// 0x00 encoded as a short string (0x81 0x00) instead of the
	// canonical single-byte form (0x00) must be rejected.
	_, err := ToItem(decodeHex("8100"))
	assert.ErrorIs(t, err, ErrMalformedRLP)
}

func TestMalformedNonCanonicalLongLength(t *testing.T) {
	// A long-string header whose length fits in the short form (< 56)
	// is not canonical.
	_, err := ToItem(append([]byte{0xB8, 0x05}, bytes.Repeat([]byte{0x01}, 5)...))
	assert.ErrorIs(t, err, ErrMalformedRLP)
}

func TestMalformedTruncatedPayload(t *testing.T) {
	_, err := ToItem([]byte{0x83, 0x01, 0x02}) // claims 3 bytes, only 2 present
	assert.ErrorIs(t, err, ErrMalformedRLP)
}

func TestToRlpBytesIncludesHeader(t *testing.T) {
	require := require.New(t)
	enc := EncodeBytes([]byte("dog"))
	item, err := ToItem(enc)
	require.NoError(err)
	assert.Equal(t, enc, ToRlpBytes(item))
}
