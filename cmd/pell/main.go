// Command pell is a small front end over the surd packages: it expands
// square roots into continued fractions and solves Pell equations,
// printing exact decimal results.
package main

import (
	"os"

	"github.com/katalvlaran/surd/cmd/pell/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
