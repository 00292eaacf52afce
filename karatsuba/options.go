// SPDX-License-Identifier: MIT

// Package karatsuba: functional configuration for the multiplier.
// This file defines:
//   - documented defaults (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Both knobs change performance only; every combination yields the same
// product.
package karatsuba

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the operand length below which the base case
	// multiplies natively. If either operand has fewer digits, no split occurs.
	DefaultThreshold = 10

	// DefaultStrategy evaluates the recursion on the Go call stack.
	DefaultStrategy = Recursive

	// minThreshold leaves at least one digit in each half. For n <= 3 a
	// middle sum may keep length n, but its value is below 2·10^ceil(n/2),
	// so its own halves are shorter and the recursion still ends.
	minThreshold = 2
)

// Panic messages for programmer errors in option constructors.
const (
	panicThresholdInvalid = "karatsuba: WithThreshold requires t >= 2"
	panicStrategyUnknown  = "karatsuba: WithStrategy got unknown strategy"
)

// Option mutates the effective configuration.
type Option func(*options)

// options is the resolved configuration after applying Option setters.
type options struct {
	threshold int      // >= minThreshold; DefaultThreshold
	strategy  Strategy // DefaultStrategy
}

// WithThreshold sets the base-case length. Operands shorter than t digits
// (either one) are multiplied directly.
//
// Panics if t < 2.
func WithThreshold(t int) Option {
	if t < minThreshold {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = t }
}

// WithStrategy selects how the split/combine recursion is evaluated.
//
// Panics on a Strategy value outside the declared constants.
func WithStrategy(s Strategy) Option {
	if s != Recursive && s != Worklist {
		panic(fmt.Sprintf("%s: %d", panicStrategyUnknown, s))
	}

	return func(o *options) { o.strategy = s }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		threshold: DefaultThreshold,
		strategy:  DefaultStrategy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
