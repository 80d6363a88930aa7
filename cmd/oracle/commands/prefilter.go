package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var preFilterTop int

var prefilterCmd = &cobra.Command{
	Use:   "prefilter [tickers...]",
	Short: "Cheap fundamental gate over the universe",
	Long: `Applies the coarse market-cap/growth/margin gates and prints the
surviving tickers ordered by their tally. Defaults to the full
universe when no tickers are given.

Example:
  go run ./cmd/oracle prefilter
  go run ./cmd/oracle prefilter --top 50`,
	RunE: runPreFilter,
}

func init() {
	rootCmd.AddCommand(prefilterCmd)
	prefilterCmd.Flags().IntVar(&preFilterTop, "top", 0, "keep only the top N tickers (0 = configured default)")
}

func runPreFilter(cmd *cobra.Command, args []string) error {
	app, err := buildApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	tickers := args
	if len(tickers) == 0 {
		tickers, err = app.universe.AllTickers(ctx)
		if err != nil {
			return fmt.Errorf("resolve universe: %w", err)
		}
	}

	topN := preFilterTop
	if topN <= 0 {
		topN = app.cfg.Scan.PreFilterTop
	}

	passed, err := app.scanner.PreFilter(ctx, tickers, topN)
	if err != nil {
		return fmt.Errorf("pre-filter: %w", err)
	}

	fmt.Printf("%d of %d tickers passed\n", len(passed), len(tickers))
	for _, ticker := range passed {
		fmt.Println(ticker)
	}
	return nil
}
