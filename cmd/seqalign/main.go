// SPDX-License-Identifier: MIT

// Command seqalign aligns pairs of biological sequences from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/seqalign/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
