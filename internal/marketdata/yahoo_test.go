package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/pkg/httputil"
	"github.com/wonny/oracle/pkg/logger"
)

const quoteSummaryFixture = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"longName": "Bank Central Asia Tbk",
				"regularMarketPrice": {"raw": 9500, "fmt": "9,500"},
				"marketCap": {"raw": 1150000000000, "fmt": "1.15T"}
			},
			"assetProfile": {"sector": "Financial Services", "industry": "Banks"},
			"summaryDetail": {
				"trailingPE": {"raw": 24.5},
				"dividendYield": {"raw": 0.021}
			},
			"defaultKeyStatistics": {
				"pegRatio": {"raw": 1.8},
				"heldPercentInsiders": {"raw": 0.12}
			},
			"financialData": {
				"currentPrice": {"raw": 9500},
				"revenueGrowth": {"raw": 0.08},
				"profitMargins": {"raw": 0.45},
				"debtToEquity": {"raw": 85.2}
			},
			"upgradeDowngradeHistory": {
				"history": [
					{"epochGradeDate": 1700000000, "firm": "Macro Sec", "toGrade": "Buy"},
					{"epochGradeDate": 1690000000, "firm": "Archipelago", "toGrade": "Hold"}
				]
			},
			"insiderTransactions": {
				"transactions": [
					{"startDate": {"raw": 1700000000}, "filerName": "J. Doe", "transactionText": "Sale at price 9400", "shares": {"raw": 1000}}
				]
			}
		}],
		"error": null
	}
}`

const chartFixture = `{
	"chart": {
		"result": [{
			"timestamp": [1700000000, 1700086400, 1700172800],
			"indicators": {
				"quote": [{
					"open":   [9400, null, 9450],
					"high":   [9500, null, 9550],
					"low":    [9350, null, 9400],
					"close":  [9450, null, 9500],
					"volume": [1000000, null, 1200000]
				}]
			}
		}],
		"error": null
	}
}`

const newsFixture = `{
	"news": [
		{"title": "Bank posts record profit", "providerPublishTime": 1700100000},
		{"title": "Sector outlook revised", "providerPublishTime": 1700000000}
	]
}`

func newTestProvider(t *testing.T, handler http.Handler) *YahooProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := httputil.New(logger.NewNop(), 5*time.Second).DisableRetry()
	return NewYahooWithClient(client, srv.URL, logger.NewNop())
}

func yahooHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v10/finance/quoteSummary/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteSummaryFixture))
	})
	mux.HandleFunc("/v8/finance/chart/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartFixture))
	})
	mux.HandleFunc("/v1/finance/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newsFixture))
	})
	return mux
}

func TestYahooSnapshot(t *testing.T) {
	p := newTestProvider(t, yahooHandler())

	snap, err := p.Snapshot(context.Background(), "BBCA.JK", 365)
	require.NoError(t, err)

	assert.Equal(t, "BBCA.JK", snap.Ticker)
	assert.Equal(t, "Bank Central Asia Tbk", snap.Info["longName"])
	assert.Equal(t, "Financial Services", snap.Info["sector"])
	assert.Equal(t, 9500.0, snap.Info["currentPrice"])
	assert.Equal(t, 1150000000000.0, snap.Info["marketCap"])
	assert.Equal(t, 24.5, snap.Info["trailingPE"])
	assert.Equal(t, 85.2, snap.Info["debtToEquity"])
	_, present := snap.Info["returnOnEquity"]
	assert.False(t, present, "absent provider fields stay absent")

	// Null candle rows are dropped.
	require.Len(t, snap.History, 2)
	assert.Equal(t, 9450.0, snap.History[0].Close)
	assert.Equal(t, int64(1200000), snap.History[1].Volume)

	// Grade history arrives newest first and is served oldest first.
	require.Len(t, snap.AnalystActions, 2)
	assert.Equal(t, "Archipelago", snap.AnalystActions[0].Firm)
	assert.Equal(t, "Buy", snap.AnalystActions[1].ToGrade)

	require.Len(t, snap.InsiderTransactions, 1)
	assert.Equal(t, "J. Doe", snap.InsiderTransactions[0].Insider)
	assert.Equal(t, int64(1000), snap.InsiderTransactions[0].Shares)

	require.Len(t, snap.News, 2)
	assert.Equal(t, "Bank posts record profit", snap.News[0].Title)
}

func TestYahooSnapshotUnknownTicker(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v10/finance/quoteSummary/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": null, "error": {"code": "Not Found", "description": "Quote not found for symbol"}}}`))
	})
	p := newTestProvider(t, mux)

	_, err := p.Snapshot(context.Background(), "NOPE.JK", 365)
	require.Error(t, err)
	assert.ErrorIs(t, err, contracts.ErrDataUnavailable)
}

func TestYahooSnapshotNewsFailureIsNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v10/finance/quoteSummary/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteSummaryFixture))
	})
	mux.HandleFunc("/v8/finance/chart/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartFixture))
	})
	mux.HandleFunc("/v1/finance/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	p := newTestProvider(t, mux)

	snap, err := p.Snapshot(context.Background(), "BBCA.JK", 365)
	require.NoError(t, err)
	assert.Empty(t, snap.News)
	assert.NotEmpty(t, snap.History)
}

func TestYahooSnapshotChartError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v10/finance/quoteSummary/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(quoteSummaryFixture))
	})
	mux.HandleFunc("/v8/finance/chart/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	p := newTestProvider(t, mux)

	_, err := p.Snapshot(context.Background(), "BBCA.JK", 365)
	require.Error(t, err)
	assert.ErrorIs(t, err, contracts.ErrDataUnavailable)
}
