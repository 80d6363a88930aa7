package sentiment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/logger"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(strategyconfig.Default(), logger.NewNop())
}

func fptr(v float64) *float64 { return &v }

func grades(gs ...string) []contracts.AnalystAction {
	out := make([]contracts.AnalystAction, len(gs))
	for i, g := range gs {
		out[i] = contracts.AnalystAction{ToGrade: g}
	}
	return out
}

func TestScoreAnalysts(t *testing.T) {
	t.Run("no coverage is neutral", func(t *testing.T) {
		score, summary := scoreAnalysts(nil)
		assert.Equal(t, 50.0, score)
		assert.Equal(t, "HOLD", summary.Recommendation)
	})

	t.Run("heavy buy flow", func(t *testing.T) {
		score, summary := scoreAnalysts(grades("Buy", "Outperform", "Overweight", "Buy"))
		assert.Equal(t, 85.0, score)
		assert.Equal(t, "STRONG BUY", summary.Recommendation)
		assert.Equal(t, 4, summary.BuyCount)
	})

	t.Run("majority buys", func(t *testing.T) {
		score, summary := scoreAnalysts(grades("Buy", "Buy", "Hold", "Buy", "Neutral"))
		assert.Equal(t, 70.0, score)
		assert.Equal(t, "BUY", summary.Recommendation)
	})

	t.Run("majority sells", func(t *testing.T) {
		score, summary := scoreAnalysts(grades("Sell", "Underperform", "Hold"))
		assert.Equal(t, 30.0, score)
		assert.Equal(t, "SELL", summary.Recommendation)
	})

	t.Run("underperform does not read as outperform", func(t *testing.T) {
		_, summary := scoreAnalysts(grades("Underperform"))
		assert.Equal(t, 1, summary.SellCount)
		assert.Zero(t, summary.BuyCount)
	})

	t.Run("only the last twenty actions count", func(t *testing.T) {
		old := make([]contracts.AnalystAction, 30)
		for i := range old {
			old[i] = contracts.AnalystAction{ToGrade: "Sell"}
		}
		recent := grades("Buy", "Buy", "Buy")
		score, _ := scoreAnalysts(append(old[:0:0], append(old, recent...)...))
		// 17 sells and 3 buys in the window.
		assert.Equal(t, 30.0, score)
	})
}

func TestScoreNews(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("no news is neutral", func(t *testing.T) {
		score, _ := a.scoreNews(nil)
		assert.Equal(t, 50.0, score)
	})

	t.Run("all positive clamps at 90", func(t *testing.T) {
		items := []contracts.NewsItem{
			{Title: "Shares surge on strong profit growth"},
			{Title: "Analysts upgrade after earnings beat"},
		}
		score, summary := a.scoreNews(items)
		assert.Equal(t, 90.0, score)
		assert.Equal(t, 2, summary.PositiveCount)
	})

	t.Run("all negative clamps at 10", func(t *testing.T) {
		items := []contracts.NewsItem{
			{Title: "Stock drops on weak results"},
			{Title: "Downgrade follows loss warning"},
		}
		score, summary := a.scoreNews(items)
		assert.Equal(t, 10.0, score)
		assert.Equal(t, 2, summary.NegativeCount)
	})

	t.Run("mixed coverage nets out", func(t *testing.T) {
		items := []contracts.NewsItem{
			{Title: "Revenue growth beats expectations"},
			{Title: "Margins decline on cost concern"},
		}
		score, _ := a.scoreNews(items)
		assert.Equal(t, 50.0, score)
	})

	t.Run("only the first ten items count", func(t *testing.T) {
		items := make([]contracts.NewsItem, 0, 12)
		for i := 0; i < 10; i++ {
			items = append(items, contracts.NewsItem{Title: fmt.Sprintf("Company schedules earnings call %d", i)})
		}
		items = append(items, contracts.NewsItem{Title: "Massive surge and gain"})
		score, summary := a.scoreNews(items)
		assert.Equal(t, 50.0, score)
		assert.Equal(t, 10, summary.NewsCount)
		assert.Zero(t, summary.PositiveCount)
	})
}

func TestScoreInstitutional(t *testing.T) {
	tests := []struct {
		pct  *float64
		want float64
	}{
		{fptr(0.85), 75},
		{fptr(0.70), 65},
		{fptr(0.50), 55},
		{fptr(0.30), 50},
		{fptr(0.10), 40},
		{nil, 50},
	}

	for _, tt := range tests {
		got := scoreInstitutional(&metrics.Metrics{HeldPercentInstitutions: tt.pct})
		assert.Equal(t, tt.want, got)
	}
}

func TestScoreInsiders(t *testing.T) {
	trade := func(kind string, n int) []contracts.InsiderTransaction {
		out := make([]contracts.InsiderTransaction, n)
		for i := range out {
			out[i] = contracts.InsiderTransaction{Transaction: kind}
		}
		return out
	}

	assert.Equal(t, 50.0, scoreInsiders(nil))
	assert.Equal(t, 70.0, scoreInsiders(trade("Buy", 5)))
	assert.Equal(t, 60.0, scoreInsiders(append(trade("Buy", 3), trade("Sale", 2)...)))
	assert.Equal(t, 40.0, scoreInsiders(append(trade("Sale", 7), trade("Buy", 2)...)))
	assert.Equal(t, 45.0, scoreInsiders(append(trade("Sale", 3), trade("Buy", 2)...)))
	assert.Equal(t, 50.0, scoreInsiders(trade("Option Exercise", 4)))
}

func TestAnalyzeWeightsComponents(t *testing.T) {
	a := newTestAnalyzer()

	snap := &contracts.TickerSnapshot{
		Ticker: "SENT.JK",
		Info: map[string]interface{}{
			"heldPercentInstitutions": 0.85,
		},
		AnalystActions: grades("Buy", "Buy", "Buy", "Outperform"),
		News: []contracts.NewsItem{
			{Title: "Profit surge drives upgrade"},
		},
		InsiderTransactions: []contracts.InsiderTransaction{
			{Transaction: "Buy"},
		},
	}

	res, err := a.Analyze(snap)
	require.NoError(t, err)

	assert.Equal(t, 85.0, res.Components.AnalystRecommendations)
	assert.Equal(t, 90.0, res.Components.NewsSentiment)
	assert.Equal(t, 75.0, res.Components.InstitutionalHoldings)
	assert.Equal(t, 70.0, res.Components.InsiderActivity)
	// .35*85 + .25*90 + .25*75 + .15*70
	assert.InDelta(t, 81.5, res.Score, 1e-9)
	assert.Equal(t, "VERY BULLISH", res.Sentiment)
}

func TestAnalyzeNoDataIsNeutral(t *testing.T) {
	a := newTestAnalyzer()

	res, err := a.Analyze(&contracts.TickerSnapshot{
		Ticker: "QUIET.JK",
		Info:   map[string]interface{}{},
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, res.Score)
	assert.Equal(t, "NEUTRAL", res.Sentiment)

	_, err = a.Analyze(nil)
	assert.ErrorIs(t, err, contracts.ErrDataUnavailable)
}
