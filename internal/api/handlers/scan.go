// Package handlers implements the HTTP endpoint logic for the API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/pkg/logger"
)

// ScanRunner is the slice of the scanner the handlers need.
type ScanRunner interface {
	ScoreTicker(ctx context.Context, ticker string) (*contracts.AnalysisResult, error)
	ScanUniverse(ctx context.Context, tickers []string) ([]contracts.AnalysisResult, error)
	QuickScan(ctx context.Context, tickers []string) ([]contracts.QuickScanResult, error)
	PreFilter(ctx context.Context, tickers []string, topN int) ([]string, error)
}

// ScanHandler handles analysis and scan endpoints.
type ScanHandler struct {
	runner       ScanRunner
	universe     contracts.UniverseSource
	repo         contracts.ResultRepository
	preFilterTop int
	logger       *logger.Logger
}

// NewScanHandler creates a scan handler. repo may be nil when no
// database is configured; persistence endpoints then report 503.
func NewScanHandler(
	runner ScanRunner,
	universe contracts.UniverseSource,
	repo contracts.ResultRepository,
	preFilterTop int,
	log *logger.Logger,
) *ScanHandler {
	return &ScanHandler{
		runner:       runner,
		universe:     universe,
		repo:         repo,
		preFilterTop: preFilterTop,
		logger:       log,
	}
}

// Analyze rates one ticker.
// GET /api/v1/analyze/{ticker}
func (h *ScanHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	result, err := h.runner.ScoreTicker(r.Context(), ticker)
	if err != nil {
		h.respondAnalysisError(w, ticker, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// QuickScan runs the fast pass over a comma-separated ticker list.
// GET /api/v1/quickscan?tickers=BBCA.JK,TLKM.JK
func (h *ScanHandler) QuickScan(w http.ResponseWriter, r *http.Request) {
	tickers := splitTickers(r.URL.Query().Get("tickers"))
	if len(tickers) == 0 {
		respondError(w, http.StatusBadRequest, "tickers query parameter is required")
		return
	}

	results, err := h.runner.QuickScan(r.Context(), tickers)
	if err != nil {
		h.logger.WithError(err).Error("quick scan failed")
		respondError(w, http.StatusInternalServerError, "Quick scan failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

// ScanRequest selects the scan input. Tickers wins over Sector; with
// neither the full universe is scanned.
type ScanRequest struct {
	Tickers   []string `json:"tickers,omitempty"`
	Sector    string   `json:"sector,omitempty"`
	PreFilter bool     `json:"prefilter,omitempty"`
	Save      bool     `json:"save,omitempty"`
}

// ScanResponse is the scan output envelope.
type ScanResponse struct {
	ScanType string                     `json:"scan_type"`
	Scanned  int                        `json:"scanned"`
	Count    int                        `json:"count"`
	ScanID   *int64                     `json:"scan_id,omitempty"`
	Results  []contracts.AnalysisResult `json:"results"`
}

// Scan runs a full scan over the selected tickers.
// POST /api/v1/scan
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	// An empty body means "scan the whole universe".
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	tickers, scanType, err := h.resolveTickers(ctx, req)
	if err != nil {
		h.logger.WithError(err).Error("universe resolution failed")
		respondError(w, http.StatusBadGateway, "Failed to resolve ticker universe")
		return
	}
	if len(tickers) == 0 {
		respondError(w, http.StatusBadRequest, "No tickers to scan")
		return
	}
	scanned := len(tickers)

	if req.PreFilter {
		tickers, err = h.runner.PreFilter(ctx, tickers, h.preFilterTop)
		if err != nil {
			h.logger.WithError(err).Error("pre-filter failed")
			respondError(w, http.StatusInternalServerError, "Pre-filter failed")
			return
		}
	}

	results, err := h.runner.ScanUniverse(ctx, tickers)
	if err != nil {
		h.logger.WithError(err).Error("scan failed")
		respondError(w, http.StatusInternalServerError, "Scan failed")
		return
	}

	resp := ScanResponse{
		ScanType: scanType,
		Scanned:  scanned,
		Count:    len(results),
		Results:  results,
	}

	if req.Save {
		if h.repo == nil {
			respondError(w, http.StatusServiceUnavailable, "Persistence is not configured")
			return
		}
		scanID, err := h.repo.SaveScan(ctx, scanType, results)
		if err != nil {
			h.logger.WithError(err).Error("save scan failed")
			respondError(w, http.StatusInternalServerError, "Failed to save scan")
			return
		}
		resp.ScanID = &scanID
	}

	respondJSON(w, http.StatusOK, resp)
}

// LatestScan returns the most recent stored scan.
// GET /api/v1/scans/latest?type=universe
func (h *ScanHandler) LatestScan(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		respondError(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	scanType := r.URL.Query().Get("type")
	if scanType == "" {
		scanType = "universe"
	}

	results, err := h.repo.LatestScan(r.Context(), scanType)
	if err != nil {
		h.logger.WithError(err).Error("latest scan lookup failed")
		respondError(w, http.StatusInternalServerError, "Failed to load latest scan")
		return
	}
	if results == nil {
		respondError(w, http.StatusNotFound, "No stored scan for type "+scanType)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scan_type": scanType,
		"count":     len(results),
		"results":   results,
	})
}

// Universe returns the resolvable ticker universe, optionally narrowed
// to one sector.
// GET /api/v1/universe?sector=Mining
func (h *ScanHandler) Universe(w http.ResponseWriter, r *http.Request) {
	if sector := r.URL.Query().Get("sector"); sector != "" {
		tickers := h.universe.SectorTickers(sector)
		if tickers == nil {
			respondError(w, http.StatusNotFound, "Unknown sector "+sector)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"sector":  sector,
			"count":   len(tickers),
			"tickers": tickers,
		})
		return
	}

	tickers, err := h.universe.AllTickers(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("universe lookup failed")
		respondError(w, http.StatusBadGateway, "Failed to resolve ticker universe")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(tickers),
		"tickers": tickers,
	})
}

func (h *ScanHandler) resolveTickers(ctx context.Context, req ScanRequest) ([]string, string, error) {
	switch {
	case len(req.Tickers) > 0:
		return req.Tickers, "custom", nil
	case req.Sector != "":
		return h.universe.SectorTickers(req.Sector), "sector:" + req.Sector, nil
	default:
		tickers, err := h.universe.AllTickers(ctx)
		return tickers, "universe", err
	}
}

func (h *ScanHandler) respondAnalysisError(w http.ResponseWriter, ticker string, err error) {
	switch {
	case errors.Is(err, contracts.ErrDataUnavailable):
		respondError(w, http.StatusNotFound, "No data available for "+ticker)
	case errors.Is(err, contracts.ErrInsufficientHistory):
		respondError(w, http.StatusUnprocessableEntity, "Insufficient price history for "+ticker)
	case errors.Is(err, contracts.ErrMalformedMetric):
		respondError(w, http.StatusBadGateway, "Provider returned malformed data for "+ticker)
	default:
		h.logger.WithField("ticker", ticker).WithError(err).Error("analysis failed")
		respondError(w, http.StatusInternalServerError, "Analysis failed")
	}
}

func splitTickers(raw string) []string {
	var tickers []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
