// main holds the entry logic for the milestones CLI.
package main

import (
	"github.com/snally-dev/camp-milestones/cmd"
	"github.com/snally-dev/camp-milestones/internal/contract"
)

// main is the entry point for the milestones calculator.
func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run milestones", err)
	}
}
