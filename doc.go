// Package decimath is a small playground for arbitrary-precision decimal
// integer arithmetic built on plain digit strings: schoolbook addition and
// subtraction, and Karatsuba multiplication on top of them.
//
// 🚀 What is in the box?
//
//	• Digit strings: validation, normalization, comparison
//	• Add / Subtract: carry and borrow propagation, any operand lengths
//	• Karatsuba: three half-size products per level, O(n^1.585)
//	• Two evaluation strategies: recursive and explicit worklist
//	• A CLI that times Karatsuba against a native big-integer product
//
// ✨ Why decimath?
//
//   - Beginner-friendly – every value is a readable string of digits
//   - Rock-solid guarantees – inputs validated once, canonical products
//   - Pure Go – no cgo; math/big only as the base case and reference
//
// Under the hood, everything is organized under a few packages:
//
//	decstr/       — validated Normalize, Add, Subtract, Compare
//	karatsuba/    — Multiply, MultiplyStats, functional options
//	cmd/decimath/ — command line: interactive multiply, mul, add, sub
//
// Quick example:
//
//	  1234 × 5678
//	  p = 12×56 = 672, q = 34×78 = 2652, s = 46×134 = 6164
//	  r = s − p − q = 2840
//	  672·10⁴ + 2840·10² + 2652 = 7006652
//
//	go get github.com/katalvlaran/decimath
package decimath
