package main

import (
	"os"

	"github.com/wonny/oracle/cmd/oracle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
