package main

import (
	"os"

	"github.com/govalues/units/cmd/unitcalc/cli"
)

func main() {
	if err := cli.Main().Execute(); err != nil {
		os.Exit(1)
	}
}
