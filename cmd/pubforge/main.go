// Package main is the entry point for the pubforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pubforge/cli/internal/cmd"
	oerrors "github.com/pubforge/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := oerrors.AsExitError(err); ok {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Non-ExitError: unexpected, print it
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
