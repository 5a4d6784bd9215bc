// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

// Encode compresses data and returns a complete frame (header + opcode
// stream). opts may be nil (defaults to level 1).
//
// Returns ErrLevelInvalid if opts.Level is not 1 or 2, and ErrLevelUnsupported
// if opts.Level is 2 (accepted by the frame format but not implemented here).
func Encode(data []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}

	switch opts.Level {
	case 1:
		return encodeLevel1(data)
	case 2:
		return nil, ErrLevelUnsupported
	default:
		return nil, ErrLevelInvalid
	}
}

func encodeLevel1(data []byte) ([]byte, error) {
	scratch := acquireEncodeScratch()
	defer releaseEncodeScratch(scratch)

	scratch.buf = encodeBodyLv1(scratch.buf, data)

	return buildFrame(uint32(len(data)), 1, scratch.buf), nil
}

// encodeBodyLv1 runs the greedy longest-match scan over data, appending the
// level-1 opcode stream to out, and returns the extended slice.
func encodeBodyLv1(out []byte, data []byte) []byte {
	n := len(data)
	if n == 0 {
		return out
	}

	pos := 0
	anchor := 0

	for pos < n {
		offset, length := findMatch(data, pos)
		if length < minMatch {
			pos++
			continue
		}

		if pos > anchor {
			out = emitLiterals(out, data[anchor:pos])
		}
		out = emitMatchLv1(out, offset, length)

		pos += length
		anchor = pos
	}

	if anchor < n {
		out = emitLiterals(out, data[anchor:])
	}

	return out
}
