package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/internal/api/handlers"
	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/pkg/logger"
)

type noopRunner struct{}

func (noopRunner) ScoreTicker(ctx context.Context, ticker string) (*contracts.AnalysisResult, error) {
	return &contracts.AnalysisResult{Ticker: ticker}, nil
}

func (noopRunner) ScanUniverse(ctx context.Context, tickers []string) ([]contracts.AnalysisResult, error) {
	return nil, nil
}

func (noopRunner) QuickScan(ctx context.Context, tickers []string) ([]contracts.QuickScanResult, error) {
	return nil, nil
}

func (noopRunner) PreFilter(ctx context.Context, tickers []string, topN int) ([]string, error) {
	return tickers, nil
}

type noopUniverse struct{}

func (noopUniverse) AllTickers(ctx context.Context) ([]string, error) { return nil, nil }
func (noopUniverse) SectorTickers(sector string) []string             { return nil }

func testRouter() http.Handler {
	h := handlers.NewScanHandler(noopRunner{}, noopUniverse{}, nil, 100, logger.NewNop())
	return NewRouter(h, nil, logger.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAnalyzeRouteBindsTickerVar(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/analyze/BBCA.JK", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var result contracts.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "BBCA.JK", result.Ticker)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/scan", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
