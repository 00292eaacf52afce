// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	errMissingInput = errors.New("decimath: expected two numbers on stdin")
	errThreshold    = errors.New("decimath: --threshold must be at least 2")
	errMismatch     = errors.New("decimath: karatsuba and reference products differ")
)

// maxLine bounds a single input line; numbers may be very long.
const maxLine = 64 << 20

// isInteractive reports whether r is a terminal, in which case prompts are shown.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readOperands reads two whitespace-trimmed lines from the command's stdin,
// prompting when stdin is a terminal.
func readOperands(cmd *cobra.Command) (string, string, error) {
	in := cmd.InOrStdin()

	return scanOperands(in, cmd.OutOrStdout(), isInteractive(in))
}

// scanOperands reads two trimmed lines from in. With prompt set, each line
// is preceded by a label written to out.
func scanOperands(in io.Reader, out io.Writer, prompt bool) (string, string, error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var operands [2]string
	labels := [2]string{"First number: ", "Second number: "}
	for i := range operands {
		if prompt {
			fmt.Fprint(out, labels[i])
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", "", fmt.Errorf("decimath: reading stdin: %w", err)
			}

			return "", "", errMissingInput
		}
		operands[i] = strings.TrimSpace(sc.Text())
	}

	return operands[0], operands[1], nil
}
