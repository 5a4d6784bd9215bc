// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

import "sync"

// maxPooledScratchCap bounds how large a returned scratch buffer we keep in
// the pool; encoding one huge buffer shouldn't pin that memory for every
// later, smaller call.
const maxPooledScratchCap = 1 << 20

// encodeScratch holds the growable opcode-stream buffer reused across Encode
// calls, avoiding a fresh allocation per call.
type encodeScratch struct {
	buf []byte
}

var encodeScratchPool = sync.Pool{
	New: func() any { return &encodeScratch{} },
}

func acquireEncodeScratch() *encodeScratch {
	s := encodeScratchPool.Get().(*encodeScratch)
	s.buf = s.buf[:0]
	return s
}

func releaseEncodeScratch(s *encodeScratch) {
	if s == nil {
		return
	}
	if cap(s.buf) > maxPooledScratchCap {
		s.buf = nil
	}
	encodeScratchPool.Put(s)
}
