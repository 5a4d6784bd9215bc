// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

// overlapCopy copies length bytes from dst[outPos-dist:] to dst[outPos:].
//
// When dist < length the source and destination ranges overlap: bytes this
// copy writes become the source for later bytes in the same copy, producing
// a run-length-style repetition (dist=1 replicates the last byte). The loop
// below must stay byte-serial — copy() or any block/vectorized move would
// read the pre-overwrite source instead, which is wrong for this case.
func overlapCopy(dst []byte, outPos, dist, length int) error {
	mPos := outPos - dist
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}
	if outPos+length > len(dst) {
		return ErrOutputOverrun
	}

	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[mPos+i]
	}

	return nil
}
