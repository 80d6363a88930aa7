package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/oracle/internal/contracts"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Candidates)
	assert.Zero(t, summary.AverageScore)
	assert.Empty(t, summary.TopPerformers)
}

func TestSummarizeDistributions(t *testing.T) {
	results := []contracts.AnalysisResult{
		{
			Ticker: "AAAA.JK", Sector: "Mining", Score: 90, Rank: 1,
			RiskLevel: contracts.RiskMedium,
			Catalysts: []contracts.Catalyst{contracts.CatalystHotSector, contracts.CatalystExplosiveGrowth},
		},
		{
			Ticker: "BBBB.JK", Sector: "Mining", Score: 80, Rank: 2,
			RiskLevel: contracts.RiskMedium,
			Catalysts: []contracts.Catalyst{contracts.CatalystHotSector},
		},
		{
			Ticker: "CCCC.JK", Sector: "Technology", Score: 70, Rank: 3,
			RiskLevel: contracts.RiskHigh,
		},
	}

	summary := Summarize(results)

	assert.Equal(t, 3, summary.Candidates)
	assert.InDelta(t, 80.0, summary.AverageScore, 1e-9)
	assert.Equal(t, 90.0, summary.TopScore)
	assert.Equal(t, 2, summary.RiskCounts[contracts.RiskMedium])
	assert.Equal(t, 1, summary.RiskCounts[contracts.RiskHigh])
	assert.Equal(t, 2, summary.CatalystCounts[contracts.CatalystHotSector])
	assert.Equal(t, 1, summary.CatalystCounts[contracts.CatalystExplosiveGrowth])
	assert.Equal(t, 2, summary.SectorCounts["Mining"])
	assert.Equal(t, "AAAA.JK", summary.TopPerformers[0].Ticker)
}

func TestSummarizeCapsTopPerformers(t *testing.T) {
	results := make([]contracts.AnalysisResult, 15)
	for i := range results {
		results[i] = contracts.AnalysisResult{
			Ticker: "TICK.JK", Score: float64(100 - i), Rank: i + 1,
			RiskLevel: contracts.RiskLow,
		}
	}

	summary := Summarize(results)
	assert.Len(t, summary.TopPerformers, 10)
	assert.Equal(t, 1, summary.TopPerformers[0].Rank)
}
