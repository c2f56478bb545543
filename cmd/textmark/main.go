// Package main provides the entry point for the textmark CLI.
package main

import (
	"os"

	"github.com/textmark/textmark/cmd/textmark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
