package main

import (
	"os"

	"github.com/theapemachine/vimnav/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
