package scanner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/pkg/database"
	"github.com/wonny/oracle/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id BIGSERIAL PRIMARY KEY,
	scan_type TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS scan_results (
	scan_id BIGINT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
	rank INT NOT NULL,
	ticker TEXT NOT NULL,
	score DOUBLE PRECISION NOT NULL,
	payload JSONB NOT NULL,
	PRIMARY KEY (scan_id, rank)
);

CREATE INDEX IF NOT EXISTS idx_scans_type_created
	ON scans (scan_type, created_at DESC);
`

// Repository persists scan output in Postgres. Each scan is a header row
// plus one result row per ranked candidate; the full result record rides
// along as a JSON payload so the schema survives result shape growth.
type Repository struct {
	db  *database.DB
	log *logger.Logger
}

// NewRepository wraps the database handle.
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{db: db, log: log.WithField("component", "repository")}
}

// InitSchema creates the scan tables when missing.
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SaveScan stores one scan's ranked results and returns the scan id.
func (r *Repository) SaveScan(ctx context.Context, scanType string, results []contracts.AnalysisResult) (int64, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var scanID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO scans (scan_type) VALUES ($1) RETURNING id`, scanType,
	).Scan(&scanID)
	if err != nil {
		return 0, fmt.Errorf("insert scan: %w", err)
	}

	batch := &pgx.Batch{}
	for _, res := range results {
		payload, err := json.Marshal(res)
		if err != nil {
			return 0, fmt.Errorf("marshal result %s: %w", res.Ticker, err)
		}
		batch.Queue(
			`INSERT INTO scan_results (scan_id, rank, ticker, score, payload)
			 VALUES ($1, $2, $3, $4, $5)`,
			scanID, res.Rank, res.Ticker, res.Score, payload,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	r.log.WithFields(map[string]interface{}{
		"scan_id":   scanID,
		"scan_type": scanType,
		"results":   len(results),
	}).Info("scan saved")

	return scanID, nil
}

// LatestScan returns the most recent scan's results for a scan type, in
// rank order. A type with no scans yet returns an empty slice.
func (r *Repository) LatestScan(ctx context.Context, scanType string) ([]contracts.AnalysisResult, error) {
	var scanID int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id FROM scans WHERE scan_type = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		scanType,
	).Scan(&scanID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest scan id: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx,
		`SELECT payload FROM scan_results WHERE scan_id = $1 ORDER BY rank`, scanID,
	)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	defer rows.Close()

	var results []contracts.AnalysisResult
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var res contracts.AnalysisResult
		if err := json.Unmarshal(payload, &res); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
