package fundamental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/logger"
)

func fptr(v float64) *float64 { return &v }

func inputFor(m *metrics.Metrics) *scoring.Input {
	return scoring.NewInput(m, &contracts.TickerSnapshot{})
}

func TestValuationScore(t *testing.T) {
	tests := []struct {
		name string
		m    *metrics.Metrics
		want float64
	}{
		{"no data stays neutral", &metrics.Metrics{}, 50},
		{"cheap on every multiple", &metrics.Metrics{
			TrailingPE:   fptr(10),
			PriceToBook:  fptr(0.8),
			PEGRatio:     fptr(0.7),
			PriceToSales: fptr(1.5),
		}, 100},
		{"expensive on every multiple", &metrics.Metrics{
			TrailingPE:   fptr(60),
			PriceToBook:  fptr(12),
			PEGRatio:     fptr(4),
			PriceToSales: fptr(15),
		}, 5},
		{"moderate PE only", &metrics.Metrics{TrailingPE: fptr(20)}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valuationScorer{}.Score(inputFor(tt.m)))
		})
	}
}

func TestProfitabilityScore(t *testing.T) {
	m := &metrics.Metrics{
		ReturnOnEquity: fptr(0.25),
		ProfitMargin:   fptr(0.22),
		OperatingMargin: fptr(0.25),
		ReturnOnAssets: fptr(0.12),
	}
	assert.Equal(t, 100.0, profitabilityScorer{}.Score(inputFor(m)))

	weak := &metrics.Metrics{
		ReturnOnEquity: fptr(0.02),
		ProfitMargin:   fptr(0.01),
	}
	assert.Equal(t, 30.0, profitabilityScorer{}.Score(inputFor(weak)))
}

func TestHealthScoreNegativeFreeCashFlow(t *testing.T) {
	m := &metrics.Metrics{FreeCashFlow: fptr(-5_000_000)}
	assert.Equal(t, 35.0, healthScorer{}.Score(inputFor(m)))

	m = &metrics.Metrics{FreeCashFlow: fptr(5_000_000)}
	assert.Equal(t, 60.0, healthScorer{}.Score(inputFor(m)))
}

func TestGrowthScoreContraction(t *testing.T) {
	m := &metrics.Metrics{
		RevenueGrowth:           fptr(-0.10),
		EarningsGrowth:          fptr(-0.20),
		EarningsQuarterlyGrowth: fptr(-0.15),
	}
	// 50 - 15 - 15 - 10
	assert.Equal(t, 10.0, growthScorer{}.Score(inputFor(m)))
}

func TestDividendScore(t *testing.T) {
	t.Run("non payer gets growth bonus", func(t *testing.T) {
		assert.Equal(t, 55.0, dividendScorer{}.Score(inputFor(&metrics.Metrics{})))
	})

	t.Run("healthy payer", func(t *testing.T) {
		m := &metrics.Metrics{DividendYield: fptr(0.035), PayoutRatio: fptr(0.45)}
		assert.Equal(t, 80.0, dividendScorer{}.Score(inputFor(m)))
	})

	t.Run("unsustainable payout", func(t *testing.T) {
		m := &metrics.Metrics{DividendYield: fptr(0.05), PayoutRatio: fptr(1.2)}
		assert.Equal(t, 50.0, dividendScorer{}.Score(inputFor(m)))
	})
}

func TestAnalyzeNeutralSnapshot(t *testing.T) {
	a := NewAnalyzer(strategyconfig.Default(), logger.NewNop())

	res, err := a.Analyze(&contracts.TickerSnapshot{
		Ticker: "BLANK.JK",
		Info:   map[string]interface{}{},
	})
	require.NoError(t, err)

	// Everything neutral except the non-payer dividend bonus:
	// 50*.25 + 50*.25 + 50*.20 + 50*.20 + 55*.10 = 50.5
	assert.InDelta(t, 50.5, res.Score, 1e-9)
	assert.Equal(t, "HOLD", res.Rating)
	assert.Equal(t, 55.0, res.Components.Dividends)
}

func TestAnalyzeRatings(t *testing.T) {
	a := NewAnalyzer(strategyconfig.Default(), logger.NewNop())

	strong := &contracts.TickerSnapshot{
		Ticker: "GOOD.JK",
		Info: map[string]interface{}{
			"trailingPE":     10.0,
			"priceToBook":    0.9,
			"pegRatio":       0.8,
			"returnOnEquity": 0.25,
			"profitMargins":  0.25,
			"debtToEquity":   20.0,
			"currentRatio":   2.5,
			"freeCashflow":   1_000_000.0,
			"revenueGrowth":  0.25,
			"earningsGrowth": 0.30,
			"dividendYield":  0.045,
			"payoutRatio":    0.4,
		},
	}

	res, err := a.Analyze(strong)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Score, 80.0)
	assert.Equal(t, "STRONG BUY", res.Rating)

	_, err = a.Analyze(nil)
	assert.ErrorIs(t, err, contracts.ErrDataUnavailable)
}

func TestAnalyzePropagatesMalformedMetric(t *testing.T) {
	a := NewAnalyzer(strategyconfig.Default(), logger.NewNop())

	_, err := a.Analyze(&contracts.TickerSnapshot{
		Ticker: "BAD.JK",
		Info:   map[string]interface{}{"trailingPE": "cheap"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, contracts.ErrMalformedMetric)
}
