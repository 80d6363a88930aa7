package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/oracle/internal/pillars/fundamental"
	"github.com/wonny/oracle/internal/pillars/sentiment"
	"github.com/wonny/oracle/internal/pillars/technical"
)

var analyzeDeep bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <ticker>",
	Short: "Rate a single ticker",
	Long: `Fetches the ticker's snapshot and runs the multibagger rating.

With --deep the fundamental, technical and sentiment deep-dive
analyzers run as well.

Example:
  go run ./cmd/oracle analyze BBCA.JK
  go run ./cmd/oracle analyze MDKA.JK --deep`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeDeep, "deep", false, "run the per-pillar deep-dive analyzers")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	app, err := buildApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	ticker := args[0]
	ctx := cmd.Context()

	result, err := app.scanner.ScoreTicker(ctx, ticker)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", ticker, err)
	}
	printAnalysis(result)

	if !analyzeDeep {
		return nil
	}

	snap, err := app.provider.Snapshot(ctx, ticker, app.cfg.Scan.LookbackDays)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", ticker, err)
	}

	fmt.Println("\n--- Deep dive ---")

	if res, err := fundamental.NewAnalyzer(app.strategy, app.log).Analyze(snap); err != nil {
		app.log.WithError(err).Warn("fundamental analysis failed")
	} else {
		fmt.Printf("Fundamental: %.2f (%s)  valuation=%.1f profitability=%.1f health=%.1f growth=%.1f dividends=%.1f\n",
			res.Score, res.Rating,
			res.Components.Valuation, res.Components.Profitability,
			res.Components.FinancialHealth, res.Components.Growth, res.Components.Dividends)
	}

	if res, err := technical.NewAnalyzer(app.strategy, app.log).Analyze(snap); err != nil {
		app.log.WithError(err).Warn("technical analysis failed")
	} else {
		fmt.Printf("Technical:   %.2f (%s)  trend=%s momentum=%s\n",
			res.Score, res.Signals.Overall, res.Signals.Trend, res.Signals.Momentum)
	}

	if res, err := sentiment.NewAnalyzer(app.strategy, app.log).Analyze(snap); err != nil {
		app.log.WithError(err).Warn("sentiment analysis failed")
	} else {
		fmt.Printf("Sentiment:   %.2f (%s)  analysts=%s news +%d/-%d\n",
			res.Score, res.Sentiment, res.Analysts.Recommendation,
			res.News.PositiveCount, res.News.NegativeCount)
	}

	return nil
}
