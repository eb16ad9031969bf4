package main

import (
	"os"

	"github.com/rpgo/investment-simulator/cmd/invsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
