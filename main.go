package main

import (
	"os"

	"github.com/misaki/kumora/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
