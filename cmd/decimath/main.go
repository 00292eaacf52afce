// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/decimath/cmd/decimath/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
