package main

import (
	"os"

	"github.com/inter-go/inter/cmd/inter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
