// Package multibagger implements the composite rating engine for stocks
// with 3x-10x return potential over a one-to-three-year horizon: six
// component ladders blended into a 0-100 score, plus catalyst tags, a
// risk level and a return-potential estimate.
package multibagger

import (
	"fmt"
	"math"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/logger"
)

// Hunter analyzes a single ticker snapshot for multibagger potential.
// Construct once and share; Analyze is a pure function of its input, so
// identical snapshots always produce identical results.
type Hunter struct {
	cfg        *strategyconfig.Config
	components []scoring.Component
	log        *logger.Logger
}

// NewHunter builds a hunter from the strategy configuration.
func NewHunter(cfg *strategyconfig.Config, log *logger.Logger) *Hunter {
	return &Hunter{
		cfg:        cfg,
		components: components(cfg),
		log:        log.WithField("engine", "multibagger"),
	}
}

// Analyze scores one snapshot. Returns ErrInsufficientHistory when the
// price series is shorter than the configured minimum, and passes
// through extraction errors for malformed or missing attribute data.
func (h *Hunter) Analyze(snap *contracts.TickerSnapshot) (*contracts.AnalysisResult, error) {
	if snap == nil {
		return nil, contracts.ErrDataUnavailable
	}
	if len(snap.History) < h.cfg.Scan.MinHistoryBars {
		return nil, fmt.Errorf("%w: %s has %d bars, need %d",
			contracts.ErrInsufficientHistory, snap.Ticker, len(snap.History), h.cfg.Scan.MinHistoryBars)
	}

	m, err := metrics.Extract(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", snap.Ticker, err)
	}

	in := scoring.NewInput(m, snap)
	composite, parts := scoring.AdditiveBlend(in, h.components)
	composite = round2(composite)

	catalysts := h.detectCatalysts(in)

	result := &contracts.AnalysisResult{
		Ticker: snap.Ticker,
		Name:   m.Name,
		Sector: m.Sector,
		Score:  composite,
		Components: contracts.ComponentScores{
			Size:      round2(parts[componentSize]),
			Growth:    round2(parts[componentGrowth]),
			Valuation: round2(parts[componentValuation]),
			Quality:   round2(parts[componentQuality]),
			Catalyst:  round2(parts[componentCatalyst]),
			Momentum:  round2(parts[componentMomentum]),
		},
		Catalysts:       catalysts,
		RiskLevel:       assessRisk(in),
		ReturnPotential: estimateReturnPotential(composite, len(catalysts)),
		Metrics: contracts.KeyMetrics{
			MarketCap:     m.MarketCapValue(),
			CurrentPrice:  in.LastClose(),
			PERatio:       m.TrailingPE,
			PEGRatio:      m.PEGRatio,
			RevenueGrowth: m.RevenueGrowth,
			ProfitMargin:  m.ProfitMargin,
		},
	}
	if result.Name == "" {
		result.Name = snap.Ticker
	}
	if result.Sector == "" {
		result.Sector = "Unknown"
	}

	h.log.WithFields(map[string]interface{}{
		"ticker":    snap.Ticker,
		"score":     composite,
		"catalysts": len(catalysts),
		"risk":      string(result.RiskLevel),
	}).Debug("analyzed ticker")

	return result, nil
}

// MinScore returns the configured candidate cutoff.
func (h *Hunter) MinScore() float64 {
	return h.cfg.Scan.MinScore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
