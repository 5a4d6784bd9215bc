// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

/*
Package fastlz implements a FastLZ-family byte-oriented compression codec:
a dictionary coder that interleaves literal runs with backward matches into
previously emitted output. The package provides level-1 encoding and
level-1/level-2 decoding over a small 5-byte self-describing frame.

# Encode

Options may be nil (defaults to level 1). Level 2 encoding is not
implemented and returns ErrLevelUnsupported.

	frame, err := fastlz.Encode(data, nil)
	frame, err := fastlz.Encode(data, &fastlz.EncodeOptions{Level: 1})

# Decode

The frame header carries its own declared length, so no OutLen is required:

	out, err := fastlz.Decode(frame, nil)

To decode into a caller-supplied buffer (e.g. to reuse an allocation across
calls):

	out, err := fastlz.DecodeInto(frame, dst)

From an io.Reader:

	out, err := fastlz.DecodeFromReader(r, nil)
*/
package fastlz
