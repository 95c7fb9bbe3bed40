package main

import (
	"os"

	"github.com/abhisek/sciquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
