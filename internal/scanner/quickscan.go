package scanner

import (
	"context"
	"math"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/indicators"
	"github.com/wonny/oracle/internal/metrics"
)

// QuickScan runs the fast simplified pass: short-horizon returns and RSI
// only, no fundamentals beyond identity fields. Failing tickers are
// skipped. Results come back in input order, unranked.
func (s *Scanner) QuickScan(ctx context.Context, tickers []string) ([]contracts.QuickScanResult, error) {
	results := make([]contracts.QuickScanResult, 0, len(tickers))

	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snap, err := s.provider.Snapshot(ctx, ticker, s.lookback)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logSkip(ticker, err)
			continue
		}
		if len(snap.History) == 0 {
			s.logSkip(ticker, contracts.ErrDataUnavailable)
			continue
		}
		m, err := metrics.Extract(snap)
		if err != nil {
			s.logSkip(ticker, err)
			continue
		}

		results = append(results, quickResult(ticker, m, snap.Closes()))
	}

	s.log.WithFields(map[string]interface{}{
		"scanned": len(tickers),
		"results": len(results),
	}).Info("quick scan complete")

	return results, nil
}

func quickResult(ticker string, m *metrics.Metrics, closes []float64) contracts.QuickScanResult {
	var returns1M, returns3M float64
	if r, ok := indicators.Return(closes, 20); ok {
		returns1M = r
	}
	if r, ok := indicators.Return(closes, 60); ok {
		returns3M = r
	}

	rsi, ok := indicators.RSI(closes, 14)
	if !ok {
		rsi = 50
	}

	signal, score := quickSignal(rsi, returns1M)

	res := contracts.QuickScanResult{
		Ticker:       ticker,
		Name:         m.Name,
		Sector:       m.Sector,
		CurrentPrice: round2(closes[len(closes)-1]),
		Returns1M:    round2(returns1M),
		Returns3M:    round2(returns3M),
		RSI:          round2(rsi),
		Signal:       signal,
		Score:        score,
		MarketCap:    m.MarketCapValue(),
	}
	if res.Name == "" {
		res.Name = ticker
	}
	if res.Sector == "" {
		res.Sector = "N/A"
	}
	return res
}

// quickSignal maps RSI and the one-month return to a coarse signal:
// washed-out names are buys, extended names are sells, the middle holds.
func quickSignal(rsi, returns1M float64) (string, float64) {
	switch {
	case rsi < 30 && returns1M < -10:
		return "BUY", 70
	case rsi > 70 && returns1M > 10:
		return "SELL", 30
	case rsi > 40 && rsi < 60:
		return "HOLD", 50
	case rsi < 40:
		return "BUY", 60
	default:
		return "HOLD", 50
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
