package main

import (
	"os"

	"github.com/8bitgaijin/Learniverse-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
