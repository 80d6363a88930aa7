package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
)

type fixedScorer struct {
	name  string
	value float64
}

func (s fixedScorer) Name() string          { return s.name }
func (s fixedScorer) Score(_ *Input) float64 { return s.value }

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5))
	assert.Equal(t, 100.0, Clamp(140))
	assert.Equal(t, 55.5, Clamp(55.5))
}

func TestWeightedAverage(t *testing.T) {
	components := []Component{
		{fixedScorer{"a", 80}, 0.5},
		{fixedScorer{"b", 40}, 0.5},
	}

	score, parts := WeightedAverage(&Input{}, components)
	assert.InDelta(t, 60.0, score, 1e-9)
	assert.Equal(t, 80.0, parts["a"])
	assert.Equal(t, 40.0, parts["b"])
}

func TestWeightedAverageClampsComponents(t *testing.T) {
	components := []Component{
		{fixedScorer{"hot", 150}, 1.0},
	}

	score, parts := WeightedAverage(&Input{}, components)
	assert.Equal(t, 100.0, score)
	assert.Equal(t, 100.0, parts["hot"])
}

func TestAdditiveBlend(t *testing.T) {
	components := []Component{
		{fixedScorer{"size", 100}, 0.20},
		{fixedScorer{"growth", 60}, 0.25},
	}

	score, parts := AdditiveBlend(&Input{}, components)
	assert.InDelta(t, 35.0, score, 1e-9)
	assert.Equal(t, 100.0, parts["size"])
}

func TestAdditiveBlendClampsComposite(t *testing.T) {
	components := []Component{
		{fixedScorer{"a", 100}, 0.8},
		{fixedScorer{"b", 100}, 0.8},
	}

	score, _ := AdditiveBlend(&Input{}, components)
	assert.Equal(t, 100.0, score)
}

func TestNewInputMaterializesSeries(t *testing.T) {
	snap := &contracts.TickerSnapshot{History: []contracts.Bar{
		{Close: 100, Volume: 1000},
		{Close: 110, Volume: 2000},
	}}

	in := NewInput(&metrics.Metrics{}, snap)
	assert.Equal(t, []float64{100, 110}, in.Closes)
	assert.Equal(t, []float64{1000, 2000}, in.Volumes)
	assert.Equal(t, 110.0, in.LastClose())
}

func TestScaleRating(t *testing.T) {
	scale := Scale{
		{80, "STRONG BUY"},
		{65, "BUY"},
		{45, "HOLD"},
		{30, "SELL"},
		{0, "STRONG SELL"},
	}

	tests := []struct {
		score float64
		want  string
	}{
		{92, "STRONG BUY"},
		{80, "STRONG BUY"},
		{79.9, "BUY"},
		{45, "HOLD"},
		{31, "SELL"},
		{10, "STRONG SELL"},
		{0, "STRONG SELL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scale.Rating(tt.score), "score %.1f", tt.score)
	}
}
