package main

import (
	"os"

	"relish/cmd/relishctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
