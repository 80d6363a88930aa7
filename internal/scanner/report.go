package scanner

import (
	"github.com/wonny/oracle/internal/contracts"
)

const topPerformerLimit = 10

// ScanSummary condenses a ranked scan into the headline figures a
// report needs: score spread, risk and catalyst distributions and the
// leading candidates.
type ScanSummary struct {
	Candidates     int                         `json:"candidates"`
	AverageScore   float64                     `json:"average_score"`
	TopScore       float64                     `json:"top_score"`
	RiskCounts     map[contracts.RiskLevel]int `json:"risk_counts"`
	CatalystCounts map[contracts.Catalyst]int  `json:"catalyst_counts"`
	SectorCounts   map[string]int              `json:"sector_counts"`
	TopPerformers  []contracts.AnalysisResult  `json:"top_performers"`
}

// Summarize builds the summary over ranked results. Results are assumed
// ranked; the top performers keep rank order.
func Summarize(results []contracts.AnalysisResult) ScanSummary {
	summary := ScanSummary{
		Candidates:     len(results),
		RiskCounts:     make(map[contracts.RiskLevel]int),
		CatalystCounts: make(map[contracts.Catalyst]int),
		SectorCounts:   make(map[string]int),
	}
	if len(results) == 0 {
		return summary
	}

	var total float64
	for _, res := range results {
		total += res.Score
		if res.Score > summary.TopScore {
			summary.TopScore = res.Score
		}
		summary.RiskCounts[res.RiskLevel]++
		summary.SectorCounts[res.Sector]++
		for _, c := range res.Catalysts {
			summary.CatalystCounts[c]++
		}
	}
	summary.AverageScore = total / float64(len(results))

	top := len(results)
	if top > topPerformerLimit {
		top = topPerformerLimit
	}
	summary.TopPerformers = make([]contracts.AnalysisResult, top)
	copy(summary.TopPerformers, results[:top])

	return summary
}
