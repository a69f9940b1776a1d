package cmd

import (
	"github.com/crytic/solc-artifacts/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the root CLI command object. All commands are attached to this
// root command.
var rootCmd = &cobra.Command{
	Use:   "solc-artifacts",
	Short: "A validator for solc JSON build artifacts",
	Long:  "solc-artifacts parses and round-trip validates the JSON artifacts emitted by the Solidity compiler",
}

// cmdLogger is the logger that will be used for the cmd package. Console output is
// enabled so that command failures surface before any structured writers exist.
var cmdLogger = logging.NewLogger(zerolog.InfoLevel, true)

// Execute provides an exportable function to invoke the CLI.
// Returns an error if one was encountered.
func Execute() error {
	return rootCmd.Execute()
}
