package main

import (
	"os"

	"github.com/verticore/liftsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
