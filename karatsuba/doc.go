// SPDX-License-Identifier: MIT

// Package karatsuba multiplies arbitrarily long non-negative decimal strings
// with the divide-and-conquer Karatsuba algorithm.
//
// 🚀 What is Karatsuba multiplication?
//
//	Splitting x = x1·10^m + x0 and y = y1·10^m + y0 turns one n-digit
//	product into four n/2-digit ones. Karatsuba notices that the middle
//	term x1·y0 + x0·y1 equals (x1+x0)(y1+y0) − x1·y1 − x0·y0, so three
//	products are enough. Applied recursively this needs O(n^1.585) digit
//	operations instead of O(n²).
//
// ✨ Key features:
//   - any operand lengths, leading zeros accepted, canonical output
//   - tunable base-case threshold (WithThreshold, default 10 digits)
//   - two evaluation strategies with identical results:
//     Recursive (call stack) and Worklist (explicit frame stack)
//   - per-call statistics: splits, base cases, max depth (MultiplyStats)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/decimath/karatsuba"
//
//	prod, err := karatsuba.Multiply("1234567890123", "9876543210987")
//
//	// iterative evaluation, smaller base case, with statistics
//	prod, st, err := karatsuba.MultiplyStats(a, b,
//		karatsuba.WithThreshold(4),
//		karatsuba.WithStrategy(karatsuba.Worklist),
//	)
//
// Operands are validated once, up front; a malformed operand yields
// decstr.ErrInvalidDigitString before any arithmetic starts.
//
// Performance:
//
//   - Time:   O(n^log2(3))
//   - Memory: O(n log n) live digits in the worst case
package karatsuba
