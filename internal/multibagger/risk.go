package multibagger

import (
	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/indicators"
	"github.com/wonny/oracle/internal/scoring"
)

// assessRisk tallies independent risk points across size, leverage,
// profitability and realized volatility, then maps the tally to an
// ordinal level. Volatility needs at least 30 bars to count.
func assessRisk(in *scoring.Input) contracts.RiskLevel {
	points := 0
	m := in.Metrics

	mcap := m.MarketCapValue()
	switch {
	case mcap < 500_000_000:
		points += 3
	case mcap < 2_000_000_000:
		points += 2
	case mcap < 5_000_000_000:
		points++
	}

	if de, ok := reported(m.DebtToEquity); ok {
		switch {
		case de > 100:
			points += 2
		case de > 50:
			points++
		}
	}

	if pm, ok := reported(m.ProfitMargin); ok {
		switch {
		case pm < 0:
			points += 3
		case pm < 0.05:
			points += 2
		}
	}

	if len(in.Closes) >= 30 {
		if vol, ok := indicators.AnnualizedVolatility(in.Closes); ok {
			switch {
			case vol > 0.60:
				points += 2
			case vol > 0.40:
				points++
			}
		}
	}

	switch {
	case points >= 6:
		return contracts.RiskVeryHigh
	case points >= 4:
		return contracts.RiskHigh
	case points >= 2:
		return contracts.RiskMedium
	default:
		return contracts.RiskLow
	}
}

// estimateReturnPotential maps the composite score and catalyst count to
// a return range label. Both thresholds must be met to step up a band.
func estimateReturnPotential(score float64, numCatalysts int) string {
	switch {
	case score >= 85 && numCatalysts >= 4:
		return "500-1000%+ (10-bagger potential)"
	case score >= 80 && numCatalysts >= 3:
		return "300-500% (4-6 bagger)"
	case score >= 75 && numCatalysts >= 2:
		return "200-300% (3-4 bagger)"
	case score >= 70:
		return "100-200% (2-3 bagger)"
	default:
		return "50-100% (modest multibagger)"
	}
}
