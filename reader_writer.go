// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

import "io"

// EncodeToWriter encodes data and writes the resulting frame to w in a single
// Write call, returning the number of bytes written.
func EncodeToWriter(w io.Writer, data []byte, opts *EncodeOptions) (int64, error) {
	frame, err := Encode(data, opts)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(frame)
	return int64(n), err
}

// DecodeFromReader reads the full stream then calls Decode. No decoding logic
// of its own. If opts.MaxInputSize > 0 and more bytes are read, returns
// ErrInputTooLarge.
func DecodeFromReader(r io.Reader, opts *DecodeOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decode(src, opts)
}
