// SPDX-License-Identifier: MIT

package karatsuba

import (
	"fmt"

	"github.com/katalvlaran/decimath/decstr"
	"github.com/katalvlaran/decimath/internal/digits"
)

// Multiply — Karatsuba multiplication of decimal strings
//
// Description:
//
//	Multiply returns the canonical decimal string of a·b. Long operands are
//	split in halves and the product is rebuilt from three half-size
//	products instead of four.
//
// Algorithm Outline:
//  1. If len(a) < threshold or len(b) < threshold, multiply directly;
//     a zero operand yields "0" at once.
//  2. Let n = max(len(a), len(b)); left-pad both operands to n digits.
//  3. Let n2 = n/2 and m = n - n2. Split A = (Ahi, Alo), B = (Bhi, Blo),
//     where the high parts hold the first n2 digits and the low parts
//     the remaining m (for odd n the low part is one digit longer).
//  4. p = Multiply(Ahi, Bhi)
//     q = Multiply(Alo, Blo)
//     s = Multiply(Ahi+Alo, Bhi+Blo)
//     r = (s - p) - q                      // = Ahi·Blo + Alo·Bhi ≥ 0
//  5. result = normalize(p·10^(2m) + r·10^m + q).
//
// Since A = Ahi·10^m + Alo, the shifts use the low-part length m, which
// equals n2 whenever n is even.
//
// Complexity:
//
//	Time   = O(n^log2(3)) digit operations
//	Memory = O(n) per level, recursion depth O(log n)
//
// Errors:
//   - decstr.ErrInvalidDigitString — an operand is empty or has a non-digit.
//     Detected before any arithmetic.
func Multiply(a, b string, opts ...Option) (string, error) {
	product, _, err := MultiplyStats(a, b, opts...)

	return product, err
}

// MultiplyStats is Multiply that also reports how the work was split.
func MultiplyStats(a, b string, opts ...Option) (string, Stats, error) {
	var st Stats
	if err := decstr.Validate(a); err != nil {
		return "", st, fmt.Errorf("karatsuba: first operand: %w", err)
	}
	if err := decstr.Validate(b); err != nil {
		return "", st, fmt.Errorf("karatsuba: second operand: %w", err)
	}

	o := gatherOptions(opts...)
	var product string
	switch o.strategy {
	case Worklist:
		product = multiplyWorklist(a, b, o.threshold, &st)
	default:
		product = multiplyRecursive(a, b, o.threshold, 0, &st)
	}

	return product, st, nil
}

// halves is one split of a pair of operands.
type halves struct {
	aHi, aLo string
	bHi, bLo string
	shift    int // low-part length m
}

// split pads a and b to a common length and cuts both at n/2.
func split(a, b string) halves {
	n := max(len(a), len(b))
	a, b = digits.PadLeft(a, n), digits.PadLeft(b, n)
	n2 := n / 2

	return halves{
		aHi:   a[:n2],
		aLo:   a[n2:],
		bHi:   b[:n2],
		bLo:   b[n2:],
		shift: n - n2,
	}
}

// sums returns the operands of the middle product s.
func (h halves) sums() (string, string) {
	return digits.Add(h.aHi, h.aLo), digits.Add(h.bHi, h.bLo)
}

// combine rebuilds the product from the three partial products.
// Normalization happens once here, not after each intermediate step.
func combine(p, q, s string, shift int) string {
	r := digits.Sub(digits.Sub(s, p), q)
	hi := digits.Shift(p, 2*shift)
	mid := digits.Shift(r, shift)

	return digits.Normalize(digits.Add(digits.Add(hi, mid), q))
}

// multiplyRecursive evaluates the recursion on the Go call stack.
func multiplyRecursive(a, b string, threshold, depth int, st *Stats) string {
	if isBase(a, b, threshold) {
		st.visit(depth, false)

		return direct(a, b)
	}
	st.visit(depth, true)

	h := split(a, b)
	sa, sb := h.sums()
	p := multiplyRecursive(h.aHi, h.bHi, threshold, depth+1, st)
	q := multiplyRecursive(h.aLo, h.bLo, threshold, depth+1, st)
	s := multiplyRecursive(sa, sb, threshold, depth+1, st)

	return combine(p, q, s, h.shift)
}
