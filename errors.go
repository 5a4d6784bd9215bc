// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrLevelInvalid is returned when Encode is called with a level other than 1 or 2.
	ErrLevelInvalid = errors.New("compression level must be 1 or 2")
	// ErrLevelUnsupported is returned when Encode is called with level 2, which is not implemented.
	ErrLevelUnsupported = errors.New("level 2 compression is not implemented")

	// ErrFrameTooShort is returned when a frame is too short to contain a header and first opcode.
	ErrFrameTooShort = errors.New("no headerlen present")
	// ErrBadHeaderLen is returned when the declared length fails the header sanity check.
	ErrBadHeaderLen = errors.New("bad headerlen")
	// ErrUnknownLevel is returned when the frame's level tag is neither 0 nor 1.
	ErrUnknownLevel = errors.New("unknown compression level")

	// ErrInputOverrun is returned when the decoder reads past the end of the opcode stream,
	// or when a level-1 stream ends before the declared length has been produced.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a match references before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")

	// ErrInputTooLarge is returned when DecodeFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrBufferTooSmall is returned when a caller-supplied destination buffer is smaller than
	// the frame's declared length.
	ErrBufferTooSmall = errors.New("destination buffer smaller than declared length")
)
