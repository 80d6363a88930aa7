package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/scanner"
)

func printResultTable(results []contracts.AnalysisResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTICKER\tNAME\tSECTOR\tSCORE\tRISK\tCATALYSTS\tPOTENTIAL")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\t%d\t%s\n",
			res.Rank, res.Ticker, truncate(res.Name, 24), res.Sector,
			res.Score, res.RiskLevel, res.NumCatalysts(), res.ReturnPotential)
	}
	w.Flush()
}

func printQuickTable(results []contracts.QuickScanResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TICKER\tNAME\tPRICE\t1M%\t3M%\tRSI\tSIGNAL\tSCORE")
	for _, res := range results {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%.0f\n",
			res.Ticker, truncate(res.Name, 24), res.CurrentPrice,
			res.Returns1M, res.Returns3M, res.RSI, res.Signal, res.Score)
	}
	w.Flush()
}

func printAnalysis(res *contracts.AnalysisResult) {
	fmt.Printf("\n%s — %s (%s)\n", res.Ticker, res.Name, res.Sector)
	fmt.Printf("Composite score:  %.2f\n", res.Score)
	fmt.Printf("Risk level:       %s\n", res.RiskLevel)
	fmt.Printf("Return potential: %s\n", res.ReturnPotential)

	fmt.Println("\nComponents:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  size\t%.2f\n", res.Components.Size)
	fmt.Fprintf(w, "  growth\t%.2f\n", res.Components.Growth)
	fmt.Fprintf(w, "  valuation\t%.2f\n", res.Components.Valuation)
	fmt.Fprintf(w, "  quality\t%.2f\n", res.Components.Quality)
	fmt.Fprintf(w, "  catalyst\t%.2f\n", res.Components.Catalyst)
	fmt.Fprintf(w, "  momentum\t%.2f\n", res.Components.Momentum)
	w.Flush()

	if len(res.Catalysts) > 0 {
		names := make([]string, len(res.Catalysts))
		for i, c := range res.Catalysts {
			names[i] = string(c)
		}
		fmt.Printf("\nCatalysts: %s\n", strings.Join(names, ", "))
	}
}

func printSummary(summary scanner.ScanSummary) {
	fmt.Printf("\nCandidates: %d  avg score: %.2f  top score: %.2f\n",
		summary.Candidates, summary.AverageScore, summary.TopScore)

	if len(summary.RiskCounts) > 0 {
		fmt.Print("Risk: ")
		for _, level := range []contracts.RiskLevel{
			contracts.RiskLow, contracts.RiskMedium, contracts.RiskHigh, contracts.RiskVeryHigh,
		} {
			if n := summary.RiskCounts[level]; n > 0 {
				fmt.Printf("%s=%d ", level, n)
			}
		}
		fmt.Println()
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
