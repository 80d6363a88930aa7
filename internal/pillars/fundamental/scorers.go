package fundamental

import (
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
)

// valuationScorer rates the price paid per unit of earnings, book value,
// growth and sales.
type valuationScorer struct{}

func (valuationScorer) Name() string { return componentValuation }

func (valuationScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	m := in.Metrics

	if pe, ok := metrics.Reported(m.TrailingPE); ok {
		switch {
		case pe < 15:
			score += 15
		case pe < 25:
			score += 10
		case pe < 35:
			score += 5
		case pe > 50:
			score -= 15
		case pe > 40:
			score -= 10
		}
	}

	if pb, ok := metrics.Reported(m.PriceToBook); ok {
		switch {
		case pb < 1:
			score += 15
		case pb < 3:
			score += 10
		case pb < 5:
			score += 5
		case pb > 10:
			score -= 10
		}
	}

	if peg, ok := metrics.Reported(m.PEGRatio); ok {
		switch {
		case peg < 1:
			score += 15
		case peg < 1.5:
			score += 10
		case peg < 2:
			score += 5
		case peg > 3:
			score -= 10
		}
	}

	if ps, ok := metrics.Reported(m.PriceToSales); ok {
		switch {
		case ps < 2:
			score += 10
		case ps < 5:
			score += 5
		case ps > 10:
			score -= 10
		}
	}

	return scoring.Clamp(score)
}

// profitabilityScorer rates returns on capital and margins.
type profitabilityScorer struct{}

func (profitabilityScorer) Name() string { return componentProfitability }

func (profitabilityScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	m := in.Metrics

	if roe, ok := metrics.Reported(m.ReturnOnEquity); ok {
		pct := roe * 100
		switch {
		case pct > 20:
			score += 20
		case pct > 15:
			score += 15
		case pct > 10:
			score += 10
		case pct < 5:
			score -= 10
		}
	}

	if pm, ok := metrics.Reported(m.ProfitMargin); ok {
		pct := pm * 100
		switch {
		case pct > 20:
			score += 15
		case pct > 15:
			score += 10
		case pct > 10:
			score += 5
		case pct < 5:
			score -= 10
		}
	}

	if om, ok := metrics.Reported(m.OperatingMargin); ok {
		pct := om * 100
		switch {
		case pct > 20:
			score += 10
		case pct > 15:
			score += 5
		case pct < 5:
			score -= 10
		}
	}

	if roa, ok := metrics.Reported(m.ReturnOnAssets); ok {
		pct := roa * 100
		switch {
		case pct > 10:
			score += 10
		case pct > 5:
			score += 5
		case pct < 2:
			score -= 5
		}
	}

	return scoring.Clamp(score)
}

// healthScorer rates leverage, liquidity and cash generation.
type healthScorer struct{}

func (healthScorer) Name() string { return componentFinancialHealth }

func (healthScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	m := in.Metrics

	if de, ok := metrics.Reported(m.DebtToEquity); ok {
		switch {
		case de < 30:
			score += 20
		case de < 50:
			score += 15
		case de < 100:
			score += 10
		case de > 200:
			score -= 20
		case de > 150:
			score -= 10
		}
	}

	if cr, ok := metrics.Reported(m.CurrentRatio); ok {
		switch {
		case cr > 2:
			score += 15
		case cr > 1.5:
			score += 10
		case cr > 1:
			score += 5
		case cr < 1:
			score -= 15
		}
	}

	if qr, ok := metrics.Reported(m.QuickRatio); ok {
		switch {
		case qr > 1.5:
			score += 10
		case qr > 1:
			score += 5
		case qr < 0.5:
			score -= 10
		}
	}

	if fcf, ok := metrics.Reported(m.FreeCashFlow); ok {
		if fcf > 0 {
			score += 10
		} else {
			score -= 15
		}
	}

	return scoring.Clamp(score)
}

// growthScorer rates top and bottom line expansion.
type growthScorer struct{}

func (growthScorer) Name() string { return componentGrowth }

func (growthScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	m := in.Metrics

	if rev, ok := metrics.Reported(m.RevenueGrowth); ok {
		pct := rev * 100
		switch {
		case pct > 20:
			score += 20
		case pct > 15:
			score += 15
		case pct > 10:
			score += 10
		case pct > 5:
			score += 5
		case pct < 0:
			score -= 15
		}
	}

	if eg, ok := metrics.Reported(m.EarningsGrowth); ok {
		pct := eg * 100
		switch {
		case pct > 25:
			score += 20
		case pct > 15:
			score += 15
		case pct > 10:
			score += 10
		case pct < 0:
			score -= 15
		}
	}

	if epsQ, ok := metrics.Reported(m.EarningsQuarterlyGrowth); ok {
		switch {
		case epsQ > 0.20:
			score += 10
		case epsQ > 0.10:
			score += 5
		case epsQ < 0:
			score -= 10
		}
	}

	return scoring.Clamp(score)
}

// dividendScorer rates payout policy. A non-payer gets a small growth
// stock bonus instead of a penalty.
type dividendScorer struct{}

func (dividendScorer) Name() string { return componentDividends }

func (dividendScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	m := in.Metrics

	if dy, ok := metrics.Reported(m.DividendYield); ok {
		pct := dy * 100
		switch {
		case pct > 4:
			score += 20
		case pct > 3:
			score += 15
		case pct > 2:
			score += 10
		case pct > 1:
			score += 5
		}
	} else {
		score += 5
	}

	if payout, ok := metrics.Reported(m.PayoutRatio); ok {
		switch {
		case payout > 0.3 && payout < 0.6:
			score += 15
		case (payout > 0.2 && payout <= 0.3) || (payout >= 0.6 && payout < 0.8):
			score += 10
		case payout >= 1:
			score -= 20
		}
	}

	return scoring.Clamp(score)
}
