package main

import (
	"os"

	"github.com/db47h/boolassign/cmd/boolcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
