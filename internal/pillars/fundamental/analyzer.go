// Package fundamental rates a company's financial statements: valuation,
// profitability, balance-sheet health, growth and dividend policy. Each
// component starts from a neutral 50 and moves by fixed deltas as metrics
// cross thresholds, so missing data leaves a component neutral rather
// than punishing it.
package fundamental

import (
	"fmt"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/logger"
)

// Component names.
const (
	componentValuation       = "valuation"
	componentProfitability   = "profitability"
	componentFinancialHealth = "financial_health"
	componentGrowth          = "growth"
	componentDividends       = "dividends"
)

var ratingScale = scoring.Scale{
	{Min: 80, Label: "STRONG BUY"},
	{Min: 65, Label: "BUY"},
	{Min: 45, Label: "HOLD"},
	{Min: 30, Label: "SELL"},
	{Min: 0, Label: "STRONG SELL"},
}

// Components is the per-facet breakdown of a fundamental score.
type Components struct {
	Valuation       float64 `json:"valuation"`
	Profitability   float64 `json:"profitability"`
	FinancialHealth float64 `json:"financial_health"`
	Growth          float64 `json:"growth"`
	Dividends       float64 `json:"dividends"`
}

// Result is the fundamental pillar output for one ticker.
type Result struct {
	Ticker     string     `json:"ticker"`
	Score      float64    `json:"score"`
	Rating     string     `json:"rating"`
	Components Components `json:"components"`
}

// Analyzer computes fundamental scores. Safe for concurrent use.
type Analyzer struct {
	components []scoring.Component
	log        *logger.Logger
}

// NewAnalyzer builds the fundamental analyzer with weights from the
// strategy configuration.
func NewAnalyzer(cfg *strategyconfig.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		components: []scoring.Component{
			{Scorer: valuationScorer{}, Weight: cfg.Fundamental.Valuation},
			{Scorer: profitabilityScorer{}, Weight: cfg.Fundamental.Profitability},
			{Scorer: healthScorer{}, Weight: cfg.Fundamental.FinancialHealth},
			{Scorer: growthScorer{}, Weight: cfg.Fundamental.Growth},
			{Scorer: dividendScorer{}, Weight: cfg.Fundamental.Dividends},
		},
		log: log.WithField("engine", "fundamental"),
	}
}

// Analyze scores one snapshot.
func (a *Analyzer) Analyze(snap *contracts.TickerSnapshot) (*Result, error) {
	if snap == nil {
		return nil, contracts.ErrDataUnavailable
	}
	m, err := metrics.Extract(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", snap.Ticker, err)
	}

	in := scoring.NewInput(m, snap)
	score, parts := scoring.WeightedAverage(in, a.components)

	res := &Result{
		Ticker: snap.Ticker,
		Score:  score,
		Rating: ratingScale.Rating(score),
		Components: Components{
			Valuation:       parts[componentValuation],
			Profitability:   parts[componentProfitability],
			FinancialHealth: parts[componentFinancialHealth],
			Growth:          parts[componentGrowth],
			Dividends:       parts[componentDividends],
		},
	}

	a.log.WithFields(map[string]interface{}{
		"ticker": snap.Ticker,
		"score":  score,
		"rating": res.Rating,
	}).Debug("analyzed ticker")

	return res, nil
}
