package contracts

import "context"

// MarketDataProvider is the narrow interface to the external market data
// source. Calls are side-effecting, potentially slow and potentially
// failing; any failure surfaces as "no data for this ticker" to callers.
type MarketDataProvider interface {
	// Snapshot fetches the full per-ticker snapshot including lookbackDays
	// of price history.
	Snapshot(ctx context.Context, ticker string, lookbackDays int) (*TickerSnapshot, error)
}

// UniverseSource supplies the ticker universe to scan
type UniverseSource interface {
	// AllTickers returns the complete known ticker universe
	AllTickers(ctx context.Context) ([]string, error)

	// SectorTickers returns the tickers grouped under a named sector
	SectorTickers(sector string) []string
}

// ResultRepository persists scan output for later retrieval
type ResultRepository interface {
	SaveScan(ctx context.Context, scanType string, results []AnalysisResult) (int64, error)
	LatestScan(ctx context.Context, scanType string) ([]AnalysisResult, error)
}

// ProgressEvent reports scan progress to an observer
type ProgressEvent struct {
	Ticker    string `json:"ticker"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
	Succeeded bool   `json:"succeeded"`
}

// ProgressSink receives scan progress events. Implementations must not
// block; slow consumers drop events.
type ProgressSink interface {
	Progress(event ProgressEvent)
}
