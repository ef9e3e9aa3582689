package main

import (
	"os"

	"github.com/trknhr/phraseguess/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
