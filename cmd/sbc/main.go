package main

import (
	"os"

	"github.com/wonny/sbc-solver/cmd/sbc/commands"
)

// main is the entry point for the SBC solver CLI
// ⭐ Unified CLI entry point: go run ./cmd/sbc [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
