// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decimath/karatsuba"
)

func mulCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul A B",
		Short: "Multiply A and B with Karatsuba and compare against the native product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMultiply(cmd, s, args[0], args[1])
		},
	}

	return cmd
}

// runMultiply times Karatsuba, then the reference, and prints both.
func runMultiply(cmd *cobra.Command, s *settings, a, b string) error {
	opts, err := s.multiplyOptions()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	start := time.Now()
	product, st, err := karatsuba.MultiplyStats(a, b, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nKaratsuba result: %s\n", product)
	fmt.Fprintf(out, "Elapsed: %.6f seconds\n", elapsed.Seconds())
	if s.stats {
		fmt.Fprintf(out, "Splits: %d, base cases: %d, max depth: %d\n", st.Splits, st.BaseCases, st.MaxDepth)
	}
	if s.noReference {
		return nil
	}

	start = time.Now()
	reference := nativeMultiply(a, b)
	elapsed = time.Since(start)

	fmt.Fprintf(out, "\nNative result: %s\n", reference)
	fmt.Fprintf(out, "Elapsed: %.6f seconds\n", elapsed.Seconds())
	if reference != product {
		return errMismatch
	}
	fmt.Fprintln(out, "Results match")

	return nil
}

// nativeMultiply multiplies with math/big. Operands are already validated.
func nativeMultiply(a, b string) string {
	x, _ := new(big.Int).SetString(a, 10)
	y, _ := new(big.Int).SetString(b, 10)

	return x.Mul(x, y).String()
}
