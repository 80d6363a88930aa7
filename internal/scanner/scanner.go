// Package scanner orchestrates batch analysis over a ticker universe:
// fetch a snapshot per ticker, run the rating engines, fold failures into
// skips, and rank the survivors. A single bad ticker never aborts a scan.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/multibagger"
	"github.com/wonny/oracle/pkg/logger"
)

// Scanner runs the multibagger engine across ticker batches.
type Scanner struct {
	provider contracts.MarketDataProvider
	hunter   *multibagger.Hunter
	lookback int
	progress contracts.ProgressSink
	log      *logger.Logger
}

// New builds a scanner. lookbackDays controls how much history each
// snapshot carries.
func New(provider contracts.MarketDataProvider, hunter *multibagger.Hunter, lookbackDays int, log *logger.Logger) *Scanner {
	return &Scanner{
		provider: provider,
		hunter:   hunter,
		lookback: lookbackDays,
		log:      log.WithField("component", "scanner"),
	}
}

// WithProgress attaches a progress sink for scan observers.
func (s *Scanner) WithProgress(sink contracts.ProgressSink) *Scanner {
	s.progress = sink
	return s
}

// ScoreTicker fetches and analyzes a single ticker.
func (s *Scanner) ScoreTicker(ctx context.Context, ticker string) (*contracts.AnalysisResult, error) {
	snap, err := s.provider.Snapshot(ctx, ticker, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", ticker, err)
	}
	return s.hunter.Analyze(snap)
}

// ScanUniverse analyzes every ticker in the batch, keeps candidates at or
// above the configured minimum score, and returns them ranked by score
// descending. Ties keep their input order. Tickers that fail with a
// per-ticker error are skipped and logged; only context cancellation
// aborts the batch.
func (s *Scanner) ScanUniverse(ctx context.Context, tickers []string) ([]contracts.AnalysisResult, error) {
	results := make([]contracts.AnalysisResult, 0, len(tickers))
	skipped := 0

	for i, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := s.ScoreTicker(ctx, ticker)
		s.emit(ticker, i+1, len(tickers), err == nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			skipped++
			s.logSkip(ticker, err)
			continue
		}

		if res.Score >= s.hunter.MinScore() {
			results = append(results, *res)
		}
	}

	rank(results)

	s.log.WithFields(map[string]interface{}{
		"scanned":    len(tickers),
		"skipped":    skipped,
		"candidates": len(results),
	}).Info("universe scan complete")

	return results, nil
}

// PreFilter fetches each ticker's fundamentals, applies the cheap gates
// and returns up to topN surviving tickers ordered by their tally,
// ties keeping input order.
func (s *Scanner) PreFilter(ctx context.Context, tickers []string, topN int) ([]string, error) {
	type candidate struct {
		ticker string
		tally  int
	}
	candidates := make([]candidate, 0, len(tickers))

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
		m, err := metrics.Extract(snap)
		if err != nil {
			s.logSkip(ticker, err)
			continue
		}

		if tally, ok := s.hunter.PreFilterScore(m); ok {
			candidates = append(candidates, candidate{ticker: ticker, tally: tally})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].tally > candidates[j].tally
	})
	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ticker
	}

	s.log.WithFields(map[string]interface{}{
		"screened": len(tickers),
		"passed":   len(out),
	}).Info("pre-filter complete")

	return out, nil
}

// rank orders results by score descending, stable on ties, and assigns
// 1-based ranks.
func rank(results []contracts.AnalysisResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
}

func (s *Scanner) emit(ticker string, index, total int, succeeded bool) {
	if s.progress == nil {
		return
	}
	s.progress.Progress(contracts.ProgressEvent{
		Ticker:    ticker,
		Index:     index,
		Total:     total,
		Succeeded: succeeded,
	})
}

func (s *Scanner) logSkip(ticker string, err error) {
	ev := s.log.WithField("ticker", ticker).WithError(err)
	switch {
	case errors.Is(err, contracts.ErrInsufficientHistory),
		errors.Is(err, contracts.ErrDataUnavailable),
		errors.Is(err, contracts.ErrMalformedMetric):
		ev.Debug("skipping ticker")
	default:
		ev.Warn("skipping ticker on unexpected error")
	}
}
