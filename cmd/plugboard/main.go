package main

import (
	"os"

	"github.com/plugboard-dev/plugboard/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
