// Package main is the entry point for ledger-export CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/ledger-export/cmd/ledger-export/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
