package main

import (
	"os"

	"fundwatch/cmd/fundwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
