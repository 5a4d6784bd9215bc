// SPDX-License-Identifier: MIT
// Copyright (c) 2026 fastlz-go
// Source: github.com/fastlz-go/fastlz

package fastlz

// Opcode stream bounds for level-1 encode/decode. See §4.2 and §4.4 of the format notes.
const (
	minMatch      = 3    // shortest backward match the encoder will emit
	maxMatch      = 264  // longest backward match a single token can carry
	maxDistance   = 8191 // largest 13-bit backward offset
	maxLiteralRun = 32   // largest literal run a single opcode can carry
)

// Opcode type field (top 3 bits of the first opcode byte).
const (
	opTypeLiteral   = 0 // type 000: literal run
	opTypeLongMatch = 7 // type 111: long match (3-byte token)
)

// headerSize is the fixed frame prefix: 4-byte little-endian length + 1 composite byte.
const headerSize = 5
