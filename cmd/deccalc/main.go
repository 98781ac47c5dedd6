package main

import (
	"os"

	"github.com/calebcase/precise/cmd/deccalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
