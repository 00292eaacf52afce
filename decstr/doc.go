// SPDX-License-Identifier: MIT

// Package decstr implements validated arithmetic primitives over decimal
// digit strings: non-negative base-10 integers written as plain text, most
// significant digit first, with no length limit.
//
// 🚀 What is a decimal string?
//
//	"0", "42" and "000123" are all decimal strings. The canonical form of a
//	value has no leading zero, except zero itself, which is exactly "0".
//	The empty string, signs, spaces and decimal points are rejected.
//
// ✨ Operations:
//   - Normalize — strip leading zeros, keeping "0" for zero
//   - Add       — schoolbook addition with carry, any operand lengths
//   - Subtract  — schoolbook subtraction with borrow; requires a ≥ b
//   - Compare   — numeric ordering, leading zeros ignored
//   - Validate  — digit-only, non-empty check
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/decimath/decstr"
//
//	sum, err := decstr.Add("999", "1")         // "1000"
//	diff, err := decstr.Subtract("1000", "1")  // "0999"
//	canon := decstr.Normalize(diff)             // "999"
//
// Neither Add nor Subtract canonicalizes its output: Subtract keeps the
// padded width of its operands, so apply Normalize when canonical form is
// needed.
//
// Errors:
//   - ErrInvalidDigitString — an operand is empty or contains a non-digit.
//   - ErrNegativeResult     — Subtract was called with a < b.
//
// Performance:
//
//   - Time:   O(L) for every operation, L = longer operand length
//   - Memory: O(L)
package decstr
