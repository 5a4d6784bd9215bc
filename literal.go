// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/fastlz-go/fastlz

package fastlz

// emitLiterals appends one or more literal-run opcodes for lits, splitting
// into chunks of at most maxLiteralRun bytes. A zero-length run emits nothing.
func emitLiterals(out []byte, lits []byte) []byte {
	for i := 0; i < len(lits); {
		chunk := maxLiteralRun
		if rem := len(lits) - i; rem < chunk {
			chunk = rem
		}

		out = append(out, opcodeByte(chunk-1))
		out = append(out, lits[i:i+chunk]...)
		i += chunk
	}

	return out
}
