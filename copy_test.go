// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

import (
	"errors"
	"testing"
)

func TestOverlapCopy(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := []byte("abcdefghXXXXXXXX")
		if err := overlapCopy(dst, 8, 8, 4); err != nil {
			t.Fatalf("overlapCopy failed: %v", err)
		}
		if got, want := string(dst), "abcdefghabcdXXXX"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping-run-length", func(t *testing.T) {
		// dist=1: replicate the last byte.
		dst := []byte{'A', 0, 0, 0, 0, 0, 0, 0, 0, 0}
		if err := overlapCopy(dst, 1, 1, 9); err != nil {
			t.Fatalf("overlapCopy failed: %v", err)
		}
		if got, want := string(dst), "AAAAAAAAAA"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping-partial-period", func(t *testing.T) {
		dst := []byte{'A', 'B', 'C', 0, 0, 0, 0, 0}
		if err := overlapCopy(dst, 3, 3, 5); err != nil {
			t.Fatalf("overlapCopy failed: %v", err)
		}
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("lookbehind-underrun", func(t *testing.T) {
		dst := make([]byte, 8)
		err := overlapCopy(dst, 2, 3, 2)
		if !errors.Is(err, ErrLookBehindUnderrun) {
			t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
		}
	})

	t.Run("output-overrun", func(t *testing.T) {
		dst := make([]byte, 8)
		err := overlapCopy(dst, 7, 1, 2)
		if !errors.Is(err, ErrOutputOverrun) {
			t.Fatalf("expected ErrOutputOverrun, got %v", err)
		}
	})

	t.Run("zero-length-is-noop", func(t *testing.T) {
		dst := []byte("abcd")
		if err := overlapCopy(dst, 2, 1, 0); err != nil {
			t.Fatalf("overlapCopy failed: %v", err)
		}
		if string(dst) != "abcd" {
			t.Fatal("zero-length copy mutated dst")
		}
	})
}

func TestFindMatch_TieBreakPrefersShortestDistance(t *testing.T) {
	// "abcX" repeats at distance 4 and distance 8 behind pos 8; both give
	// the same 4-byte match length, so distance 4 (tried first) must win.
	data := []byte("abcXabcXabcX")
	offset, length := findMatch(data, 8)
	if length < minMatch {
		t.Fatalf("expected a match at pos 8, got length=%d", length)
	}
	if offset != 4 {
		t.Fatalf("expected shortest-distance tie-break offset=4, got offset=%d", offset)
	}
}

func TestFindMatch_NoMatchBelowMinLength(t *testing.T) {
	data := []byte("abXYabZZ")
	// "ab" repeats at distance 4 but only for 2 bytes, below minMatch.
	_, length := findMatch(data, 4)
	if length >= minMatch {
		t.Fatalf("expected no match (length < %d), got length=%d", minMatch, length)
	}
}

func TestFindMatch_RespectsMaxDistance(t *testing.T) {
	data := make([]byte, maxDistance+10)
	data[0] = 'Z'
	data[1] = 'Z'
	data[2] = 'Z'
	// All zero bytes elsewhere except the marker run far back; position
	// maxDistance+5 cannot reach back to offset 0 within maxDistance.
	offset, length := findMatch(data, maxDistance+5)
	if length >= minMatch && offset > maxDistance {
		t.Fatalf("match offset %d exceeds maxDistance %d", offset, maxDistance)
	}
}
