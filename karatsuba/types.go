// SPDX-License-Identifier: MIT

package karatsuba

import (
	"fmt"
	"strings"
)

// Strategy controls how the split/combine recursion is evaluated.
//
//   - Recursive — one Go call per sub-multiplication. Simple, stack depth O(log n).
//
//   - Worklist  — an explicit frame arena and index stack. Constant Go stack
//     depth regardless of operand length; same splits, same combines.
type Strategy int

const (
	// Recursive evaluates sub-products with ordinary recursive calls.
	Recursive Strategy = iota

	// Worklist evaluates sub-products iteratively from an explicit stack.
	Worklist
)

// String returns the lower-case strategy name used by the CLI.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Worklist:
		return "worklist"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive", "":
		return Recursive, nil
	case "worklist":
		return Worklist, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Stats describes the shape of one multiplication.
type Stats struct {
	// Splits counts recursive-case nodes: each one spawns three sub-products.
	Splits int

	// BaseCases counts sub-products computed directly.
	BaseCases int

	// MaxDepth is the deepest level reached; the root is depth 0.
	MaxDepth int
}

// visit records a node at the given depth.
func (s *Stats) visit(depth int, split bool) {
	if split {
		s.Splits++
	} else {
		s.BaseCases++
	}
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}
