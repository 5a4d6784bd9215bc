// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

import "encoding/binary"

// buildFrame assembles a complete frame from a declared uncompressed length,
// a level (1 or 2), and the raw opcode-stream body.
//
// The level tag and the first opcode byte share frame byte 4: for level 1 the
// tag is 0, so ORing it with body[0] is a no-op and the composite byte is
// exactly body[0]. Decode relies on reading that byte back verbatim as the
// stream's first opcode.
func buildFrame(n uint32, level int, body []byte) []byte {
	out := make([]byte, headerSize, headerSize+len(body))
	binary.LittleEndian.PutUint32(out, n)

	levelTag := byte(level - 1)

	if len(body) == 0 {
		out[4] = levelTag << 5
		return out
	}

	out[4] = (levelTag << 5) | (body[0] & 0x1f)
	out = append(out, body[1:]...)

	return out
}

// Decode parses a frame and returns the decompressed bytes. opts may be nil.
//
// Returns ErrFrameTooShort if frame has fewer than headerSize bytes,
// ErrBadHeaderLen if the declared length fails the sanity check (or the
// optional ExpectedLen cross-check), and ErrUnknownLevel if the level tag is
// neither 0 nor 1.
func Decode(frame []byte, opts *DecodeOptions) ([]byte, error) {
	return decodeFrame(frame, opts, nil)
}

// DecodeInto behaves like Decode but writes into dst when dst is large enough
// for the frame's declared length, returning a slice over dst instead of a
// fresh allocation. Returns ErrBufferTooSmall if dst is too small.
func DecodeInto(frame []byte, dst []byte) ([]byte, error) {
	return decodeFrame(frame, nil, dst)
}

func decodeFrame(frame []byte, opts *DecodeOptions, dst []byte) ([]byte, error) {
	if len(frame) < headerSize {
		return nil, ErrFrameTooShort
	}

	n := binary.LittleEndian.Uint32(frame[:4])

	if opts != nil && opts.ExpectedLen >= 0 && uint32(opts.ExpectedLen) != n {
		return nil, ErrBadHeaderLen
	}

	// Sanity check from the source format: reject wildly oversized headers.
	// This does not catch a too-small N; that surfaces later as a decode error.
	if uint64(n)/256 > uint64(len(frame)) {
		return nil, ErrBadHeaderLen
	}

	levelTag := frame[4] >> 5

	var (
		out []byte
		err error
	)

	switch levelTag {
	case 0:
		out, err = decodeLevel1(frame[4:], int(n), dst)
	case 1:
		out, err = decodeLevel2(frame[4:], int(n), dst)
	default:
		return nil, ErrUnknownLevel
	}

	return out, err
}

// outputBuffer returns a buffer of exactly n bytes: dst itself if it is large
// enough, otherwise a fresh allocation. Returns ErrBufferTooSmall if dst was
// supplied but is too small.
func outputBuffer(dst []byte, n int) ([]byte, error) {
	if dst == nil {
		return make([]byte, n), nil
	}
	if len(dst) < n {
		return nil, ErrBufferTooSmall
	}
	return dst[:n], nil
}
