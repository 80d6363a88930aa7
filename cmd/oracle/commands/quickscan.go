package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quickscanCmd = &cobra.Command{
	Use:   "quickscan <tickers...>",
	Short: "Fast RSI/returns pass over a ticker list",
	Long: `Runs the simplified scan: one- and three-month returns and RSI
only, with a coarse BUY/HOLD/SELL signal per ticker.

Example:
  go run ./cmd/oracle quickscan BBCA.JK TLKM.JK ANTM.JK`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuickScan,
}

func init() {
	rootCmd.AddCommand(quickscanCmd)
}

func runQuickScan(cmd *cobra.Command, args []string) error {
	app, err := buildApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	results, err := app.scanner.QuickScan(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("quick scan: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("No tickers produced data")
		return nil
	}

	printQuickTable(results)
	return nil
}
