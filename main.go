package main

import (
	"os"

	"github.com/iburimskiy/brain-visualization/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
