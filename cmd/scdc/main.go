package main

import (
	"os"

	"github.com/bnema/scdc-smart-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
