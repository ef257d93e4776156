package main

import (
	"os"

	"github.com/SscSPs/ledger_core/internal/commands"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

func main() {
	rootCmd := commands.NewRootCommand(config.LoadConfig, commands.OpenStorage)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
