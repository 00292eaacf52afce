// SPDX-License-Identifier: MIT

package decstr

import (
	"fmt"

	"github.com/katalvlaran/decimath/internal/digits"
)

// Validate reports whether s is a well-formed decimal string.
// It returns ErrInvalidDigitString wrapped with the offending offset, or nil.
//
// Complexity: O(len(s)), no allocation on success.
func Validate(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("empty operand: %w", ErrInvalidDigitString)
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return fmt.Errorf("character %q at offset %d: %w", c, i, ErrInvalidDigitString)
		}
	}

	return nil
}

// validatePair checks both operands of a binary operation, a first.
func validatePair(a, b string) error {
	if err := Validate(a); err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	if err := Validate(b); err != nil {
		return fmt.Errorf("second operand: %w", err)
	}

	return nil
}

// Normalize returns s without leading zeros. The value zero is returned as
// exactly "0", never as the empty string.
//
// Normalize does not validate s; for digit input it never fails.
func Normalize(s string) string {
	return digits.Normalize(s)
}

// Add returns the decimal string of a + b.
//
// Algorithm:
//  1. Validate both operands.
//  2. Left-pad the shorter operand with zeros to the common length L.
//  3. From the rightmost digit, emit (da + db + carry) mod 10 and carry the rest.
//  4. Prepend a remaining carry.
//
// The result has length L or L+1. It is not canonicalized, so
// Add("007", "1") returns "008".
//
// Errors:
//   - ErrInvalidDigitString if either operand is malformed.
func Add(a, b string) (string, error) {
	if err := validatePair(a, b); err != nil {
		return "", err
	}

	return digits.Add(a, b), nil
}

// Subtract returns the decimal string of a - b.
//
// The operands are padded to the common length L and subtracted right to
// left with borrow. The result has exactly L digits and may keep leading
// zeros: Subtract("1000", "1") returns "0999".
//
// Errors:
//   - ErrInvalidDigitString if either operand is malformed.
//   - ErrNegativeResult if a < b; nothing is computed in that case.
func Subtract(a, b string) (string, error) {
	if err := validatePair(a, b); err != nil {
		return "", err
	}
	if digits.Compare(a, b) < 0 {
		return "", fmt.Errorf("%s - %s: %w", digits.Normalize(a), digits.Normalize(b), ErrNegativeResult)
	}

	return digits.Sub(a, b), nil
}

// Compare returns -1 if a < b, 0 if a == b and +1 if a > b, comparing
// numeric values (leading zeros are ignored).
//
// Errors:
//   - ErrInvalidDigitString if either operand is malformed.
func Compare(a, b string) (int, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	return digits.Compare(a, b), nil
}
