// SPDX-License-Identifier: MIT

// Package commands wires the decimath command line: an interactive Karatsuba
// multiplication timed against a native big-integer reference, plus mul, add
// and sub subcommands over the library packages.
package commands
