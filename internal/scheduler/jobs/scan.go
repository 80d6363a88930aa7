// Package jobs holds the concrete scheduled jobs.
package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/scanner"
	"github.com/wonny/oracle/pkg/logger"
)

// UniverseScanJob runs the full pre-filter + scan pass over the whole
// universe and persists the ranked results.
type UniverseScanJob struct {
	scanner      *scanner.Scanner
	universe     contracts.UniverseSource
	repo         contracts.ResultRepository
	preFilterTop int
	schedule     string
	logger       *logger.Logger
}

// NewUniverseScanJob creates the nightly scan job. schedule is a cron
// expression with seconds field; repo may be nil to skip persistence.
func NewUniverseScanJob(
	sc *scanner.Scanner,
	universe contracts.UniverseSource,
	repo contracts.ResultRepository,
	preFilterTop int,
	schedule string,
	log *logger.Logger,
) *UniverseScanJob {
	return &UniverseScanJob{
		scanner:      sc,
		universe:     universe,
		repo:         repo,
		preFilterTop: preFilterTop,
		schedule:     schedule,
		logger:       log.WithField("job", "universe_scan"),
	}
}

// Name returns the job name
func (j *UniverseScanJob) Name() string { return "universe_scan" }

// Schedule returns the cron schedule
func (j *UniverseScanJob) Schedule() string { return j.schedule }

// Run executes the scan.
func (j *UniverseScanJob) Run(ctx context.Context) error {
	tickers, err := j.universe.AllTickers(ctx)
	if err != nil {
		return fmt.Errorf("resolve universe: %w", err)
	}
	if len(tickers) == 0 {
		return fmt.Errorf("empty ticker universe")
	}

	candidates, err := j.scanner.PreFilter(ctx, tickers, j.preFilterTop)
	if err != nil {
		return fmt.Errorf("pre-filter: %w", err)
	}

	results, err := j.scanner.ScanUniverse(ctx, candidates)
	if err != nil {
		return fmt.Errorf("scan universe: %w", err)
	}

	if j.repo != nil {
		scanID, err := j.repo.SaveScan(ctx, "universe", results)
		if err != nil {
			return fmt.Errorf("save scan: %w", err)
		}
		j.logger.WithFields(map[string]interface{}{
			"scan_id":    scanID,
			"candidates": len(results),
		}).Info("scheduled scan saved")
	}

	return nil
}
