package main

import (
	"os"

	"github.com/stvalidate/stvalidate/cmd/stvalidate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
