// SPDX-License-Identifier: MIT

package karatsuba

import (
	"math/big"
	"strconv"

	"github.com/katalvlaran/decimath/internal/digits"
)

// maxWordDigits is the longest operand whose product with another operand of
// the same length still fits in a uint64: (10^9-1)^2 < 2^64.
const maxWordDigits = 9

// isBase reports whether the pair is finished without a split: either
// operand is shorter than threshold, or either one is zero. Zero operands
// are common as the padded high halves of a short operand.
func isBase(a, b string, threshold int) bool {
	if len(a) < threshold || len(b) < threshold {
		return true
	}

	return digits.IsZero(a) || digits.IsZero(b)
}

// direct multiplies two digit strings natively and returns the canonical
// product. Inputs may carry leading zeros.
//
// Both operands up to 9 digits use a single uint64 multiply; anything longer
// (a short operand against a long one, or a raised threshold) goes through
// math/big.
func direct(a, b string) string {
	if digits.IsZero(a) || digits.IsZero(b) {
		return "0"
	}
	if len(a) <= maxWordDigits && len(b) <= maxWordDigits {
		return strconv.FormatUint(parseWord(a)*parseWord(b), 10)
	}

	x, _ := new(big.Int).SetString(a, 10)
	y, _ := new(big.Int).SetString(b, 10)

	return x.Mul(x, y).String()
}

// parseWord converts at most 9 validated digits into a uint64.
func parseWord(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}

	return v
}
