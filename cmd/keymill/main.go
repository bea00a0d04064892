package main

import (
	"os"

	"keymill/cmd/keymill/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
