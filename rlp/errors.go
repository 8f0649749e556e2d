// Copyright 2024 The Erigon Authors
// SPDX-License-Identifier: Apache-2.0

package rlp

import "errors"

// ErrMalformedRLP is returned whenever the decoder encounters a length
// or header that is inconsistent with the canonical RLP grammar.
var ErrMalformedRLP = errors.New("rlp: malformed encoding")

// ErrNotAList is returned by ToList when the item is a string, not a
// list.
var ErrNotAList = errors.New("rlp: item is not a list")

// ErrNotAString is returned by ToBytes when the item is a list, not a
// string.
var ErrNotAString = errors.New("rlp: item is not a string")
