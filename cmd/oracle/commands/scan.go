package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/oracle/internal/scanner"
)

var (
	scanSector    string
	scanPreFilter bool
	scanSave      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [tickers...]",
	Short: "Scan a ticker universe for multibagger candidates",
	Long: `Scans the given tickers, a sector, or the full universe, keeps
candidates at or above the minimum score and prints them ranked.

Example:
  go run ./cmd/oracle scan
  go run ./cmd/oracle scan --sector Mining
  go run ./cmd/oracle scan BBCA.JK ANTM.JK MDKA.JK
  go run ./cmd/oracle scan --prefilter --save`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanSector, "sector", "", "scan only the named sector")
	scanCmd.Flags().BoolVar(&scanPreFilter, "prefilter", false, "apply the coarse pre-filter before the full scan")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "persist the ranked results (requires DATABASE_URL)")
}

func runScan(cmd *cobra.Command, args []string) error {
	app, err := buildApp(scanSave)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	tickers := args
	scanType := "custom"
	switch {
	case len(tickers) > 0:
	case scanSector != "":
		tickers = app.universe.SectorTickers(scanSector)
		if tickers == nil {
			return fmt.Errorf("unknown sector %q (known: %v)", scanSector, app.universe.Sectors())
		}
		scanType = "sector:" + scanSector
	default:
		tickers, err = app.universe.AllTickers(ctx)
		if err != nil {
			return fmt.Errorf("resolve universe: %w", err)
		}
		scanType = "universe"
	}

	fmt.Printf("Scanning %d tickers (%s)...\n", len(tickers), scanType)

	if scanPreFilter {
		tickers, err = app.scanner.PreFilter(ctx, tickers, app.cfg.Scan.PreFilterTop)
		if err != nil {
			return fmt.Errorf("pre-filter: %w", err)
		}
		fmt.Printf("Pre-filter kept %d candidates\n", len(tickers))
	}

	results, err := app.scanner.ScanUniverse(ctx, tickers)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No candidates at or above score %.0f\n", app.hunter.MinScore())
		return nil
	}

	printResultTable(results)
	printSummary(scanner.Summarize(results))

	if scanSave {
		if err := app.initSchema(ctx); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
		scanID, err := app.repo.SaveScan(ctx, scanType, results)
		if err != nil {
			return fmt.Errorf("save scan: %w", err)
		}
		fmt.Printf("\nSaved as scan %d\n", scanID)
	}

	return nil
}
