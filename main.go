package main

import (
	"os"

	"github.com/connstr/connstr-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
