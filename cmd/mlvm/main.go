// Package main is the entry point for the mlvm CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/mlvm/cmd/mlvm/commands"
	"github.com/thoreinstein/mlvm/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		exitErr := errors.Classify(err)
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
}
