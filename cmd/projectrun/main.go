// Package main holds the main command line interface for projectrun. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"fmt"
	"os"

	"github.com/aggdata/projectrun/internal/errors"
)

func main() {
	configureRootCmd(rootCmd, &cliArgs)
	rootCmd.AddCommand(listCmd)

	// Script outcomes are reported in `internal/cli`. The error returned here is mainly used to communicate the
	// necessary exit code; anything else didn't make it that far and still needs to be printed.
	if err := rootCmd.Execute(); err != nil {
		if e, ok := errors.AsExecutionError(err); ok {
			os.Exit(e.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
