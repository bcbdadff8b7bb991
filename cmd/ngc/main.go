package main

import (
	"os"

	"github.com/msto63/ngc/cmd/ngc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
