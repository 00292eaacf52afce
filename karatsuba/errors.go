// SPDX-License-Identifier: MIT

package karatsuba

import "errors"

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
//
// Operand errors are not redeclared here: Multiply wraps the decstr
// sentinels (decstr.ErrInvalidDigitString) with "karatsuba:" context.
var ErrUnknownStrategy = errors.New("karatsuba: unknown strategy")
