// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

// decodeLevel1 decodes a level-1 opcode stream. stream is frame[4:] — its
// first byte is frame byte 4, read back verbatim as the first opcode, per
// the frame/opcode fusion described in buildFrame.
func decodeLevel1(stream []byte, n int, dst []byte) ([]byte, error) {
	out, err := outputBuffer(dst, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Byte 0 of the stream encodes only the level tag; no tokens follow.
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
			// Uses the whole byte, not just data: equivalent since type==0
			// already implies the top 3 bits are zero.
			length := int(opcode0) + 1
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
			if inPos+2 > len(stream) {
				return nil, ErrInputOverrun
			}
			op1 := stream[inPos]
			op2 := stream[inPos+1]
			inPos += 2

			matchLen := 9 + int(op1)
			dist := ((data << 8) | int(op2)) + 1

			if err := overlapCopy(out, outPos, dist, matchLen); err != nil {
				return nil, err
			}
			outPos += matchLen

		default:
			if inPos+1 > len(stream) {
				return nil, ErrInputOverrun
			}
			op1 := stream[inPos]
			inPos++

			matchLen := 2 + int(typ)
			dist := ((data << 8) | int(op1)) + 1

			if err := overlapCopy(out, outPos, dist, matchLen); err != nil {
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

	if outPos != n {
		// The stream ended before the declared length was produced.
		return nil, ErrInputOverrun
	}

	return out, nil
}
