// Package main provides the entry point for the jobdash CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/ttv-voidgg/datascience-dashboard/cmd/jobdash/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
