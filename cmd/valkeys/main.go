package main

import (
	"os"

	"valkeys/cmd/valkeys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
