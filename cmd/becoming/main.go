package main

import (
	"os"

	"becoming/cmd/becoming/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
