package main

import (
	"os"

	"mkd-reporter/cmd/mkd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
