// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/decimath/karatsuba"
)

// settings holds the persistent flags shared by every subcommand.
type settings struct {
	threshold   int
	strategy    string
	stats       bool
	noReference bool
}

// multiplyOptions turns the flags into karatsuba options.
func (s *settings) multiplyOptions() ([]karatsuba.Option, error) {
	strategy, err := karatsuba.ParseStrategy(s.strategy)
	if err != nil {
		return nil, err
	}
	if s.threshold < 2 {
		return nil, errThreshold
	}

	return []karatsuba.Option{
		karatsuba.WithThreshold(s.threshold),
		karatsuba.WithStrategy(strategy),
	}, nil
}

// NewRootCmd builds the command tree. Without arguments the root command
// prompts for two numbers on stdin.
func NewRootCmd() *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:   "decimath",
		Short: "Karatsuba multiplication of arbitrarily long decimal integers",
		Long: "decimath multiplies two non-negative decimal integers with the Karatsuba\n" +
			"algorithm and times it against a native big-integer multiplication.\n" +
			"Run without arguments to enter the numbers interactively.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readOperands(cmd)
			if err != nil {
				return err
			}

			return runMultiply(cmd, s, a, b)
		},
	}

	root.PersistentFlags().IntVar(&s.threshold, "threshold", karatsuba.DefaultThreshold,
		"operand length below which digits are multiplied directly (>= 2)")
	root.PersistentFlags().StringVar(&s.strategy, "strategy", karatsuba.DefaultStrategy.String(),
		"evaluation strategy: recursive or worklist")
	root.PersistentFlags().BoolVar(&s.stats, "stats", false, "print split statistics after multiplying")
	root.PersistentFlags().BoolVar(&s.noReference, "no-reference", false, "skip the native big-integer comparison")

	root.AddCommand(mulCmd(s), addCmd(), subCmd())

	return root
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
