// SPDX-License-Identifier: MIT

package karatsuba_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decimath/decstr"
	"github.com/katalvlaran/decimath/karatsuba"
)

// randDigits returns a random digit string of length n; leading zeros allowed.
func randDigits(r *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}

	return sb.String()
}

// oracle multiplies with math/big.
func oracle(t *testing.T, a, b string) string {
	t.Helper()
	x, ok := new(big.Int).SetString(a, 10)
	require.True(t, ok, "oracle failed to parse %q", a)
	y, ok := new(big.Int).SetString(b, 10)
	require.True(t, ok, "oracle failed to parse %q", b)

	return x.Mul(x, y).String()
}

// configs enumerates every strategy against a few thresholds.
func configs() map[string][]karatsuba.Option {
	out := make(map[string][]karatsuba.Option)
	for _, s := range []karatsuba.Strategy{karatsuba.Recursive, karatsuba.Worklist} {
		for _, th := range []int{2, 3, 4, 7, karatsuba.DefaultThreshold, 32} {
			out[fmt.Sprintf("%s/t=%d", s, th)] = []karatsuba.Option{
				karatsuba.WithStrategy(s),
				karatsuba.WithThreshold(th),
			}
		}
	}

	return out
}

// mustMultiply fails the test on error.
func mustMultiply(t *testing.T, a, b string, opts ...karatsuba.Option) string {
	t.Helper()
	got, err := karatsuba.Multiply(a, b, opts...)
	require.NoError(t, err, "Multiply(%q, %q)", a, b)

	return got
}

//----------------------------------------------------------------------------//
// Concrete scenarios
//----------------------------------------------------------------------------//

// TestMultiply_ThirteenDigits checks an odd-length split against the oracle.
func TestMultiply_ThirteenDigits(t *testing.T) {
	a, b := "1234567890123", "9876543210987"
	want := oracle(t, a, b)
	for name, opts := range configs() {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, mustMultiply(t, a, b, opts...))
		})
	}
}

// TestMultiply_Zero verifies zero operands collapse to exactly "0".
func TestMultiply_Zero(t *testing.T) {
	assert.Equal(t, "0", mustMultiply(t, "0", "123456789012345"))
	assert.Equal(t, "0", mustMultiply(t, "123456789012345", "0"))
	assert.Equal(t, "0", mustMultiply(t, "000000000000000000", "00000000000000000000"))

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		x := randDigits(r, 1+r.Intn(80))
		assert.Equal(t, "0", mustMultiply(t, x, "0"), "x=%s", x)
		assert.Equal(t, "0", mustMultiply(t, x, strings.Repeat("0", 1+r.Intn(40)),
			karatsuba.WithThreshold(4)), "x=%s padded zero", x)
	}
}

// TestMultiply_CanonicalOutput ensures leading zeros in operands never leak out.
func TestMultiply_CanonicalOutput(t *testing.T) {
	got := mustMultiply(t, "0000000000000000000012", "00000000000000000000000000003")
	assert.Equal(t, "36", got)

	got = mustMultiply(t, "000001000000000000", "000000000000000010", karatsuba.WithThreshold(4))
	assert.Equal(t, "10000000000000", got)
}

// TestMultiply_UnevenLengths covers a short operand against a long one.
func TestMultiply_UnevenLengths(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for name, opts := range configs() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				a := randDigits(r, 1+r.Intn(12))
				b := randDigits(r, 100+r.Intn(100))
				assert.Equal(t, oracle(t, a, b), mustMultiply(t, a, b, opts...), "%s × %s", a, b)
				assert.Equal(t, oracle(t, b, a), mustMultiply(t, b, a, opts...), "%s × %s", b, a)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Base-case boundary
//----------------------------------------------------------------------------//

// TestMultiply_BaseCaseBoundary verifies 9-digit operands never split and
// 10-digit operands always do, with both agreeing with the oracle.
func TestMultiply_BaseCaseBoundary(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, s := range []karatsuba.Strategy{karatsuba.Recursive, karatsuba.Worklist} {
		t.Run(s.String(), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				a9, b9 := randDigits(r, 9), randDigits(r, 9)
				got, st, err := karatsuba.MultiplyStats(a9, b9, karatsuba.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, oracle(t, a9, b9), got, "%s × %s", a9, b9)
				assert.Equal(t, 0, st.Splits, "9 digits must not split")
				assert.Equal(t, 1, st.BaseCases)

				a10, b10 := randDigits(r, 10), randDigits(r, 10)
				got, st, err = karatsuba.MultiplyStats(a10, b10, karatsuba.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, oracle(t, a10, b10), got, "%s × %s", a10, b10)
				assert.Equal(t, 1, st.Splits, "10 digits must split exactly once")
				assert.Equal(t, 3, st.BaseCases)
				assert.Equal(t, 1, st.MaxDepth)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Sampled properties
//----------------------------------------------------------------------------//

// TestMultiply_MatchesOracle compares random products of many lengths.
func TestMultiply_MatchesOracle(t *testing.T) {
	for name, opts := range configs() {
		t.Run(name, func(t *testing.T) {
			r := rand.New(rand.NewSource(2024))
			for i := 0; i < 60; i++ {
				a := randDigits(r, 1+r.Intn(150))
				b := randDigits(r, 1+r.Intn(150))
				assert.Equal(t, oracle(t, a, b), mustMultiply(t, a, b, opts...), "%s × %s", a, b)
			}
		})
	}
}

// TestMultiply_Commutative checks x·y == y·x.
func TestMultiply_Commutative(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		x := randDigits(r, 1+r.Intn(70))
		y := randDigits(r, 1+r.Intn(70))
		assert.Equal(t, mustMultiply(t, x, y), mustMultiply(t, y, x), "x=%s y=%s", x, y)
	}
}

// TestMultiply_Associative checks x·(y·z) == (x·y)·z on small triples.
func TestMultiply_Associative(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 30; i++ {
		x := randDigits(r, 1+r.Intn(25))
		y := randDigits(r, 1+r.Intn(25))
		z := randDigits(r, 1+r.Intn(25))

		left := mustMultiply(t, x, mustMultiply(t, y, z))
		right := mustMultiply(t, mustMultiply(t, x, y), z)
		assert.Equal(t, decstr.Normalize(right), decstr.Normalize(left), "x=%s y=%s z=%s", x, y, z)
	}
}

// TestMultiply_StrategiesAgree verifies both strategies produce the same
// product and walk the same tree.
func TestMultiply_StrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 20; i++ {
		a := randDigits(r, 50+r.Intn(200))
		b := randDigits(r, 50+r.Intn(200))

		rp, rs, err := karatsuba.MultiplyStats(a, b, karatsuba.WithThreshold(5))
		require.NoError(t, err)
		wp, ws, err := karatsuba.MultiplyStats(a, b, karatsuba.WithThreshold(5),
			karatsuba.WithStrategy(karatsuba.Worklist))
		require.NoError(t, err)

		assert.Equal(t, rp, wp)
		assert.Equal(t, rs, ws)
		assert.Equal(t, 2*rs.Splits+1, rs.BaseCases, "every split adds three children")
	}
}

//----------------------------------------------------------------------------//
// Errors and options
//----------------------------------------------------------------------------//

// TestMultiply_InvalidDigitString ensures malformed operands fail up front.
func TestMultiply_InvalidDigitString(t *testing.T) {
	long := strings.Repeat("1234567890", 10)
	cases := []struct {
		name string
		a, b string
	}{
		{"EmptyFirst", "", "12"},
		{"EmptySecond", "12", ""},
		{"LetterDeepInLongOperand", long + "x" + long, long},
		{"Sign", "-12", "3"},
		{"Space", "12", "3 4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range []karatsuba.Strategy{karatsuba.Recursive, karatsuba.Worklist} {
				got, st, err := karatsuba.MultiplyStats(tc.a, tc.b, karatsuba.WithStrategy(s))
				assert.ErrorIs(t, err, decstr.ErrInvalidDigitString)
				assert.Empty(t, got)
				assert.Zero(t, st, "no arithmetic may run before validation")
			}
		})
	}
}

// TestOptions_Panics verifies programmer errors in option constructors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { karatsuba.WithThreshold(1) })
	assert.Panics(t, func() { karatsuba.WithThreshold(0) })
	assert.Panics(t, func() { karatsuba.WithThreshold(-1) })
	assert.Panics(t, func() { karatsuba.WithStrategy(karatsuba.Strategy(42)) })
	assert.NotPanics(t, func() { karatsuba.WithThreshold(2) })
	assert.NotPanics(t, func() { karatsuba.WithThreshold(3) })
}

// TestMultiply_NilOptionIgnored keeps defaults when a nil Option is passed.
func TestMultiply_NilOptionIgnored(t *testing.T) {
	got, err := karatsuba.Multiply("12", "12", nil)
	require.NoError(t, err)
	assert.Equal(t, "144", got)
}

// TestParseStrategy maps CLI names to strategies.
func TestParseStrategy(t *testing.T) {
	s, err := karatsuba.ParseStrategy("Worklist")
	require.NoError(t, err)
	assert.Equal(t, karatsuba.Worklist, s)

	s, err = karatsuba.ParseStrategy("recursive")
	require.NoError(t, err)
	assert.Equal(t, karatsuba.Recursive, s)

	_, err = karatsuba.ParseStrategy("parallel")
	assert.ErrorIs(t, err, karatsuba.ErrUnknownStrategy)

	assert.Equal(t, "Strategy(9)", karatsuba.Strategy(9).String())
}

// TestMultiplyStats_ZeroDoesNotSplit verifies a long zero operand finishes at the root.
func TestMultiplyStats_ZeroDoesNotSplit(t *testing.T) {
	long := strings.Repeat("7", 200)
	for _, s := range []karatsuba.Strategy{karatsuba.Recursive, karatsuba.Worklist} {
		got, st, err := karatsuba.MultiplyStats(strings.Repeat("0", 150), long, karatsuba.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, "0", got)
		assert.Equal(t, karatsuba.Stats{BaseCases: 1}, st, s.String())
	}
}
