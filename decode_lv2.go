// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

import "encoding/binary"

// decodeLevel2 decodes a level-2 opcode stream. Differs from level 1 in the
// literal-length field, the long-match extended length escape, and the
// offset-8191 escape (whose two variants intentionally differ — see
// DESIGN.md). Match offsets are used directly as the backward distance,
// without the +1 that level 1 applies; a level-2 encoder would have to write
// offsets in this same convention.
func decodeLevel2(stream []byte, n int, dst []byte) ([]byte, error) {
	out, err := outputBuffer(dst, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return out, nil
	}

	inPos := 0
	outPos := 0
	opcode0 := stream[inPos]
	inPos++

	for {
		typ := opcode0 >> 5
		data := int(opcode0 & 0x1f)

		switch {
		case typ == opTypeLiteral:
			length := data + 1
			if inPos+length > len(stream) {
				return nil, ErrInputOverrun
			}
			if outPos+length > len(out) {
				return nil, ErrOutputOverrun
			}
			copy(out[outPos:outPos+length], stream[inPos:inPos+length])
			inPos += length
			outPos += length

		case typ == opTypeLongMatch:
			matchLen := 9
			for {
				if inPos >= len(stream) {
					return nil, ErrInputOverrun
				}
				b := stream[inPos]
				inPos++
				matchLen += int(b)
				if b != 255 {
					break
				}
			}

			if inPos >= len(stream) {
				return nil, ErrInputOverrun
			}
			ofs := data << 8
			ofs += int(stream[inPos])
			inPos++

			if ofs == maxDistance {
				if inPos+2 > len(stream) {
					return nil, ErrInputOverrun
				}
				// Native-endian signed 16-bit, matching the source's observed
				// behavior (asymmetric with the short-match escape below).
				raw := binary.NativeEndian.Uint16(stream[inPos : inPos+2])
				ofs += int(int16(raw))
				inPos += 2
			}

			if err := overlapCopy(out, outPos, ofs, matchLen); err != nil {
				return nil, err
			}
			outPos += matchLen

		default:
			matchLen := 2 + int(typ)

			if inPos >= len(stream) {
				return nil, ErrInputOverrun
			}
			ofs := data << 8
			ofs += int(stream[inPos])
			inPos++

			if ofs == maxDistance {
				if inPos+2 > len(stream) {
					return nil, ErrInputOverrun
				}
				// Big-endian unsigned 16-bit, matching the source's observed
				// behavior (asymmetric with the long-match escape above).
				b0 := stream[inPos]
				b1 := stream[inPos+1]
				inPos += 2
				ofs += (int(b0) << 8) | int(b1)
			}

			if err := overlapCopy(out, outPos, ofs, matchLen); err != nil {
				return nil, err
			}
			outPos += matchLen
		}

		if inPos < len(stream) {
			opcode0 = stream[inPos]
			inPos++
		} else {
			break
		}
	}

	return out, nil
}
