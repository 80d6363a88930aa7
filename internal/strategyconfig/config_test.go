package strategyconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestDefaultWeightSums(t *testing.T) {
	cfg := Default()

	assert.InDelta(t, 1.0, cfg.Multibagger.Sum(), 0.001)
	assert.InDelta(t, 1.0, cfg.Fundamental.Sum(), 0.001)
	assert.InDelta(t, 1.0, cfg.Technical.Sum(), 0.001)
	assert.InDelta(t, 1.0, cfg.Sentiment.Sum(), 0.001)
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg := Default()
	cfg.Multibagger.Size = 0.50

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multibagger")
}

func TestValidateRejectsInvertedCapRange(t *testing.T) {
	cfg := Default()
	cfg.PreFilter.MaxMarketCap = cfg.PreFilter.MinMarketCap

	require.Error(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeMinScore(t *testing.T) {
	tests := []struct {
		name     string
		minScore float64
		wantErr  bool
	}{
		{"negative", -1, true},
		{"over 100", 101, true},
		{"zero", 0, false},
		{"mid", 70, false},
		{"max", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Scan.MinScore = tt.minScore

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSectorThemesCoverExpectedSectors(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2.0, cfg.SectorThemes["Technology"])
	assert.Equal(t, 2.0, cfg.SectorThemes["Mining"])
	assert.Equal(t, 1.5, cfg.SectorThemes["Energy"])
	assert.Equal(t, 1.0, cfg.SectorThemes["Financial Services"])

	_, ok := cfg.SectorThemes["Utilities"]
	assert.False(t, ok, "unlisted sectors carry no theme multiplier")
}
