// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

// findMatch scans all backward distances d in [1, min(pos, maxDistance)] from
// data[pos], counting the run of equal bytes against data[pos-d:] up to
// maxMatch or the end of input, and retains the longest. Ties keep the
// shortest distance: distances are tried ascending from 1, and a candidate
// only replaces the current best on strictly greater length.
//
// Returns (0, 0) if no match of at least minMatch bytes exists.
func findMatch(data []byte, pos int) (offset, length int) {
	n := len(data)

	limit := maxMatch
	if rem := n - pos; rem < limit {
		limit = rem
	}
	if limit < minMatch {
		return 0, 0
	}

	maxDist := pos
	if maxDist > maxDistance {
		maxDist = maxDistance
	}

	bestLen := 0
	bestOffset := 0

	for d := 1; d <= maxDist; d++ {
		mp := pos - d

		l := 0
		for l < limit && data[pos+l] == data[mp+l] {
			l++
		}

		if l > bestLen {
			bestLen = l
			bestOffset = d
			if bestLen == limit {
				// No other distance can beat a match that already runs to the cap.
				break
			}
		}
	}

	if bestLen < minMatch {
		return 0, 0
	}

	return bestOffset, bestLen
}

// emitMatchLv1 appends a level-1 match token for the given 1-based backward
// offset (1..maxDistance) and length (minMatch..maxMatch).
func emitMatchLv1(out []byte, offset, length int) []byte {
	r := offset - 1 // 13-bit encoded offset

	if length <= 8 {
		m := length - 2 // 1..6
		return append(out,
			opcodeByte((m<<5)|(r>>8)),
			opcodeByte(r&0xff),
		)
	}

	m := length - 9 // 0..255
	return append(out,
		opcodeByte(0xe0|(r>>8)),
		opcodeByte(m),
		opcodeByte(r&0xff),
	)
}
