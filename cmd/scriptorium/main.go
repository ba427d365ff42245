// Package main is the entry point for the scriptorium CLI.
package main

import (
	"os"

	"github.com/jmylchreest/scriptorium/cmd/scriptorium/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
