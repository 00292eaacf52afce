// SPDX-License-Identifier: MIT

// Package digits holds the unchecked base-10 kernels shared by decstr and
// karatsuba. Every function assumes its inputs are non-empty ASCII digit
// strings; callers validate once at their public boundary.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No validation, no errors: garbage in, garbage out.
//   - Results are fresh strings; inputs are never modified.
package digits

import "strings"

// Normalize strips leading zeros. A value of zero becomes exactly "0".
// The result is a substring of s, so no allocation happens.
func Normalize(s string) string {
	if len(s) == 0 {
		return "0"
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}

	return s[i:]
}

// PadLeft returns s left-padded with '0' to length n.
// If s is already n digits or longer it is returned unchanged.
func PadLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return strings.Repeat("0", n-len(s)) + s
}

// Shift multiplies s by 10^k by appending k zeros.
func Shift(s string, k int) string {
	if k <= 0 {
		return s
	}

	return s + strings.Repeat("0", k)
}

// Add returns a + b.
//
// Algorithm:
//  1. Left-pad both operands to the common length L.
//  2. Scan right to left, emitting (da+db+carry) mod 10 and carrying the quotient.
//  3. Prepend a remaining carry as an extra leading digit.
//
// The result has length L or L+1 and keeps any leading zeros the padded
// operands imply, e.g. Add("007", "1") == "008".
func Add(a, b string) string {
	l := max(len(a), len(b))
	a, b = PadLeft(a, l), PadLeft(b, l)

	out := make([]byte, l+1)
	var carry byte
	for i := l - 1; i >= 0; i-- {
		sum := (a[i] - '0') + (b[i] - '0') + carry
		out[i+1] = sum%10 + '0'
		carry = sum / 10
	}
	if carry == 0 {
		return string(out[1:])
	}
	out[0] = carry + '0'

	return string(out)
}

// Sub returns a - b assuming a >= b numerically. The result has exactly
// max(len(a), len(b)) digits and may carry leading zeros:
// Sub("1000", "1") == "0999".
//
// If a < b the final borrow is dropped and the result is the ten's
// complement of b - a. Callers must guarantee the precondition.
func Sub(a, b string) string {
	l := max(len(a), len(b))
	a, b = PadLeft(a, l), PadLeft(b, l)

	out := make([]byte, l)
	var borrow int
	for i := l - 1; i >= 0; i-- {
		d := int(a[i]-'0') - int(b[i]-'0') - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d) + '0'
	}

	return string(out)
}

// Compare returns -1, 0 or +1 as a is numerically less than, equal to, or
// greater than b. Leading zeros are ignored.
func Compare(a, b string) int {
	a, b = Normalize(a), Normalize(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return strings.Compare(a, b)
}

// IsZero reports whether every digit of s is '0'.
func IsZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}

	return true
}
