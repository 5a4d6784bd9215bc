// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

// opcodeByte packs an opcode fragment to one byte. Callers pass values whose
// low 8 bits are the serialized representation.
func opcodeByte(v int) byte {
	return byte(v & 0xff)
}
