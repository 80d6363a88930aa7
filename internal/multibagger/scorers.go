package multibagger

import (
	"github.com/wonny/oracle/internal/indicators"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
)

// Component names, stable keys into the blend output.
const (
	componentSize      = "size"
	componentGrowth    = "growth"
	componentValuation = "valuation"
	componentQuality   = "quality"
	componentCatalyst  = "catalyst"
	componentMomentum  = "momentum"
)

func reported(p *float64) (float64, bool) {
	return metrics.Reported(p)
}

// sizeScorer favors small and mid caps; the sweet spot for outsized moves
// is the 500M-1B band.
type sizeScorer struct{}

func (sizeScorer) Name() string { return componentSize }

func (sizeScorer) Score(in *scoring.Input) float64 {
	mcap := in.Metrics.MarketCapValue()
	if mcap == 0 {
		return 0
	}
	capB := mcap / 1_000_000_000
	switch {
	case capB < 0.5:
		return 40
	case capB < 1:
		return 100
	case capB < 3:
		return 85
	case capB < 5:
		return 70
	case capB < 10:
		return 50
	default:
		return 30
	}
}

// growthScorer rewards fast growers; the very top revenue band scores
// slightly below the 30-50% band because hypergrowth rarely sustains.
type growthScorer struct{}

func (growthScorer) Name() string { return componentGrowth }

func (growthScorer) Score(in *scoring.Input) float64 {
	score := 0.0

	if rev, ok := reported(in.Metrics.RevenueGrowth); ok {
		switch {
		case rev > 0.50:
			score += 35
		case rev > 0.30:
			score += 40
		case rev > 0.20:
			score += 35
		case rev > 0.10:
			score += 20
		default:
			score += 5
		}
	}

	if eg, ok := reported(in.Metrics.EarningsGrowth); ok {
		switch {
		case eg > 0.40:
			score += 40
		case eg > 0.25:
			score += 35
		case eg > 0.15:
			score += 25
		default:
			score += 10
		}
	}

	if q, ok := reported(in.Metrics.RevenueQuarterlyGrowth); ok && q > 0.20 {
		score += 20
	}

	return score
}

// valuationScorer is built around PEG under 2, with an absolute PE check
// against value traps. A missing PEG scores the neutral 20.
type valuationScorer struct{}

func (valuationScorer) Name() string { return componentValuation }

func (valuationScorer) Score(in *scoring.Input) float64 {
	score := 0.0

	if peg, ok := reported(in.Metrics.PEGRatio); ok {
		switch {
		case peg > 0 && peg < 0.5:
			score += 50
		case peg < 1:
			score += 45
		case peg < 1.5:
			score += 35
		case peg < 2:
			score += 25
		default:
			score += 10
		}
	} else {
		score += 20
	}

	if pe, ok := reported(in.Metrics.TrailingPE); ok {
		switch {
		case pe > 5 && pe < 15:
			score += 30
		case pe >= 15 && pe < 25:
			score += 25
		case pe >= 25 && pe < 40:
			score += 15
		default:
			score += 5
		}
	}

	if pb, ok := reported(in.Metrics.PriceToBook); ok && pb > 0 && pb < 3 {
		score += 20
	}

	return score
}

// qualityScorer checks profitability, returns and balance-sheet strength.
// Unreported debt scores the optimistic 20: small caps that carry no debt
// often simply do not report the ratio.
type qualityScorer struct{}

func (qualityScorer) Name() string { return componentQuality }

func (qualityScorer) Score(in *scoring.Input) float64 {
	score := 0.0

	if pm, ok := reported(in.Metrics.ProfitMargin); ok {
		switch {
		case pm > 0.20:
			score += 25
		case pm > 0.10:
			score += 20
		case pm > 0.05:
			score += 15
		default:
			score += 5
		}
	}

	if roe, ok := reported(in.Metrics.ReturnOnEquity); ok {
		switch {
		case roe > 0.25:
			score += 25
		case roe > 0.15:
			score += 20
		case roe > 0.10:
			score += 15
		default:
			score += 5
		}
	}

	if de, ok := reported(in.Metrics.DebtToEquity); ok {
		switch {
		case de < 30:
			score += 25
		case de < 50:
			score += 20
		case de < 100:
			score += 15
		default:
			score += 5
		}
	} else {
		score += 20
	}

	if cr, ok := reported(in.Metrics.CurrentRatio); ok {
		switch {
		case cr > 2:
			score += 15
		case cr > 1.5:
			score += 12
		case cr > 1:
			score += 8
		}
	}

	if in.Metrics.OperatingCashFlow != nil && *in.Metrics.OperatingCashFlow > 0 {
		score += 10
	}

	return score
}

// catalystScorer looks for conditions that precede re-ratings: volume
// surges, hot sector themes, insider skin in the game, room for
// institutional discovery and explosive top-line growth.
type catalystScorer struct {
	themes map[string]float64
}

func (catalystScorer) Name() string { return componentCatalyst }

func (s catalystScorer) Score(in *scoring.Input) float64 {
	score := 0.0

	if surge, ok := indicators.RecentVolumeSurge(in.Volumes, 20); ok {
		switch {
		case surge > 3:
			score += 30
		case surge > 2:
			score += 20
		case surge > 1.5:
			score += 10
		}
	}

	score += s.themes[in.Metrics.Sector] * 15

	if ins, ok := reported(in.Metrics.HeldPercentInsiders); ok {
		switch {
		case ins > 0.30:
			score += 20
		case ins > 0.20:
			score += 15
		case ins > 0.10:
			score += 10
		}
	}

	if inst, ok := reported(in.Metrics.HeldPercentInstitutions); ok {
		switch {
		case inst < 0.30:
			score += 15
		case inst < 0.50:
			score += 10
		}
	}

	if rev, ok := reported(in.Metrics.RevenueGrowth); ok && rev > 0.50 {
		score += 20
	}

	return score
}

// momentumScorer reads the tape: medium-horizon returns, an RSI sweet
// spot that excludes overbought names, and position against the long
// moving averages. Undefined with under 50 bars of history.
type momentumScorer struct{}

func (momentumScorer) Name() string { return componentMomentum }

func (momentumScorer) Score(in *scoring.Input) float64 {
	if len(in.Closes) < 50 {
		return 0
	}
	score := 0.0

	if r6, ok := indicators.Return(in.Closes, 126); ok {
		switch {
		case r6 > 50:
			score += 30
		case r6 > 25:
			score += 25
		case r6 > 10:
			score += 20
		case r6 > 0:
			score += 10
		}
	}

	if r3, ok := indicators.Return(in.Closes, 63); ok {
		switch {
		case r3 > 30:
			score += 25
		case r3 > 15:
			score += 20
		case r3 > 5:
			score += 15
		}
	}

	if rsi, ok := indicators.RSI(in.Closes, 14); ok {
		switch {
		case rsi >= 40 && rsi <= 70:
			score += 20
		case rsi >= 30 && rsi < 40:
			score += 15
		}
	}

	price := in.LastClose()
	if ma50, ok := indicators.SMA(in.Closes, 50); ok && price > ma50 {
		score += 15
	}
	if ma200, ok := indicators.SMA(in.Closes, 200); ok && ma200 != 0 && price > ma200 {
		score += 10
	}

	return score
}

func components(cfg *strategyconfig.Config) []scoring.Component {
	return []scoring.Component{
		{Scorer: sizeScorer{}, Weight: cfg.Multibagger.Size},
		{Scorer: growthScorer{}, Weight: cfg.Multibagger.Growth},
		{Scorer: valuationScorer{}, Weight: cfg.Multibagger.Valuation},
		{Scorer: qualityScorer{}, Weight: cfg.Multibagger.Quality},
		{Scorer: catalystScorer{themes: cfg.SectorThemes}, Weight: cfg.Multibagger.Catalyst},
		{Scorer: momentumScorer{}, Weight: cfg.Multibagger.Momentum},
	}
}
