// SPDX-License-Identifier: MIT

package decstr

import "errors"

// Every message is prefixed with "decstr:". Entry points wrap these with the
// offending operand via fmt.Errorf("...: %w"); match them with errors.Is.
var (
	// ErrInvalidDigitString indicates an empty operand or one containing a
	// character outside '0'..'9'.
	ErrInvalidDigitString = errors.New("decstr: invalid digit string")

	// ErrNegativeResult indicates Subtract was called with a minuend smaller
	// than the subtrahend.
	ErrNegativeResult = errors.New("decstr: negative result")
)
