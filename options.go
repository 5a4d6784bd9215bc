// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// Level selects the compression variant. 1 = implemented greedy encoder.
	// 2 is accepted by the frame format but returns ErrLevelUnsupported.
	Level int
}

// DefaultEncodeOptions returns options for level-1 encoding.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{Level: 1}
}

// DecodeOptions configures Decode.
//
// Unlike a format without a self-describing header, the decompressed length
// here always comes from the frame itself; ExpectedLen is an optional
// cross-check, not a requirement.
type DecodeOptions struct {
	// ExpectedLen, if >= 0, is checked against the frame's declared length;
	// a mismatch is reported as ErrBadHeaderLen. -1 (the default) disables the check.
	ExpectedLen int
	// MaxInputSize limits how many bytes DecodeFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecodeOptions returns options with no expected-length cross-check and no input limit.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{ExpectedLen: -1}
}
