package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/internal/contracts"
)

func TestExtractTypedFields(t *testing.T) {
	snap := &contracts.TickerSnapshot{
		Ticker: "BBCA.JK",
		Info: map[string]interface{}{
			"longName":      "Bank Central Asia",
			"sector":        "Financial Services",
			"industry":      "Banks",
			"currentPrice":  9875.0,
			"marketCap":     1.2e12,
			"trailingPE":    22.5,
			"revenueGrowth": 0.12,
			"profitMargins": 0.45,
			"debtToEquity":  int64(85),
		},
	}

	m, err := Extract(snap)
	require.NoError(t, err)

	assert.Equal(t, "Bank Central Asia", m.Name)
	assert.Equal(t, "Financial Services", m.Sector)

	require.NotNil(t, m.CurrentPrice)
	assert.Equal(t, 9875.0, *m.CurrentPrice)

	require.NotNil(t, m.DebtToEquity)
	assert.Equal(t, 85.0, *m.DebtToEquity)

	require.NotNil(t, m.RevenueGrowth)
	assert.InDelta(t, 0.12, *m.RevenueGrowth, 1e-9)

	assert.Nil(t, m.PEGRatio)
	assert.Nil(t, m.DividendYield)
}

func TestExtractZeroIsNotAbsent(t *testing.T) {
	snap := &contracts.TickerSnapshot{
		Ticker: "TEST.JK",
		Info: map[string]interface{}{
			"revenueGrowth": 0.0,
		},
	}

	m, err := Extract(snap)
	require.NoError(t, err)

	require.NotNil(t, m.RevenueGrowth, "reported zero must stay distinguishable from absence")
	assert.Equal(t, 0.0, *m.RevenueGrowth)
	assert.Nil(t, m.EarningsGrowth)
}

func TestExtractPriceFallback(t *testing.T) {
	snap := &contracts.TickerSnapshot{
		Ticker: "TEST.JK",
		Info: map[string]interface{}{
			"regularMarketPrice": 1500.0,
		},
	}

	m, err := Extract(snap)
	require.NoError(t, err)

	require.NotNil(t, m.CurrentPrice)
	assert.Equal(t, 1500.0, *m.CurrentPrice)
}

func TestExtractMalformed(t *testing.T) {
	tests := []struct {
		name string
		info map[string]interface{}
	}{
		{"string where number expected", map[string]interface{}{"marketCap": "big"}},
		{"number where string expected", map[string]interface{}{"sector": 42.0}},
		{"nested object", map[string]interface{}{"trailingPE": map[string]interface{}{"raw": 10.0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(&contracts.TickerSnapshot{Ticker: "X", Info: tt.info})
			require.Error(t, err)
			assert.ErrorIs(t, err, contracts.ErrMalformedMetric)
		})
	}
}

func TestExtractNilSnapshot(t *testing.T) {
	_, err := Extract(nil)
	assert.ErrorIs(t, err, contracts.ErrDataUnavailable)

	_, err = Extract(&contracts.TickerSnapshot{Ticker: "X"})
	assert.ErrorIs(t, err, contracts.ErrDataUnavailable)
}

func TestValueHelpers(t *testing.T) {
	cap := 2e9
	m := &Metrics{MarketCap: &cap}

	assert.Equal(t, 2e9, m.MarketCapValue())
	assert.Equal(t, 0.0, m.PriceValue())
}
