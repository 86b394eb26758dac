package main

import (
	"os"

	"github.com/dmc/portal/cmd/checkout/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
