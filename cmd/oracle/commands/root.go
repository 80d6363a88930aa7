// Package commands implements the oracle CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Oracle - multibagger screening for the Jakarta exchange",
	Long: `Oracle scores listed companies for multibagger potential: size,
growth, valuation, quality, catalysts and momentum roll up into a
0-100 composite, with separate fundamental, technical and sentiment
deep-dive ratings.

Usage:
  go run ./cmd/oracle [command]

Examples:
  go run ./cmd/oracle analyze BBCA.JK
  go run ./cmd/oracle scan --sector Mining
  go run ./cmd/oracle quickscan BBCA.JK TLKM.JK
  go run ./cmd/oracle serve`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
