// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decimath/decstr"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add A B",
		Short: "Print A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := decstr.Add(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)

			return nil
		},
	}

	return cmd
}

func subCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "sub A B",
		Short: "Print A - B (A must not be smaller than B)",
		Long: "sub prints A - B padded to the width of the longer operand.\n" +
			"Pass --normalize to strip leading zeros.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := decstr.Subtract(args[0], args[1])
			if err != nil {
				return err
			}
			if normalize {
				diff = decstr.Normalize(diff)
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)

			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "strip leading zeros from the result")

	return cmd
}
