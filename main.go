package main

import (
	"os"

	"github.com/harlowd/shopgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
