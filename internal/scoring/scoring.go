// Package scoring defines the shared scorer capability and the two
// aggregation styles used across the rating engines. Weight tables are
// data, so an engine is a list of (scorer, weight) pairs plus a blend
// function rather than bespoke arithmetic.
package scoring

import (
	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
)

// Input bundles everything a component scorer may look at: the typed
// metric record, the raw snapshot for its event lists, and the price
// history in oldest-first order. Scorers must treat it as read-only.
type Input struct {
	Metrics  *metrics.Metrics
	Snapshot *contracts.TickerSnapshot
	Bars     []contracts.Bar
	Closes   []float64
	Volumes  []float64
}

// NewInput builds a scorer input from a validated snapshot and its
// extracted metrics. Close and volume series are materialized once so
// every scorer shares them.
func NewInput(m *metrics.Metrics, snap *contracts.TickerSnapshot) *Input {
	in := &Input{Metrics: m, Snapshot: snap}
	if snap != nil {
		in.Bars = snap.History
	}
	in.Closes = make([]float64, len(in.Bars))
	in.Volumes = make([]float64, len(in.Bars))
	for i, b := range in.Bars {
		in.Closes[i] = b.Close
		in.Volumes[i] = float64(b.Volume)
	}
	return in
}

// LastClose returns the latest close, or 0 on an empty series.
func (in *Input) LastClose() float64 {
	if len(in.Closes) == 0 {
		return 0
	}
	return in.Closes[len(in.Closes)-1]
}

// Scorer scores one facet of a ticker on the 0-100 scale.
type Scorer interface {
	Name() string
	Score(in *Input) float64
}

// Component pairs a scorer with its weight in an engine's blend.
type Component struct {
	Scorer Scorer
	Weight float64
}

// Clamp bounds a score to [0,100].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// WeightedAverage runs every component and blends the scores as a
// weighted mean. Each component score is already on the 0-100 scale so
// the composite needs no clamping beyond the component clamp.
func WeightedAverage(in *Input, components []Component) (float64, map[string]float64) {
	parts := make(map[string]float64, len(components))
	var total, weightSum float64
	for _, c := range components {
		s := Clamp(c.Scorer.Score(in))
		parts[c.Scorer.Name()] = s
		total += s * c.Weight
		weightSum += c.Weight
	}
	if weightSum == 0 {
		return 0, parts
	}
	return total / weightSum, parts
}

// AdditiveBlend runs every component and sums weight-scaled scores,
// clamping the composite. Used where the weights are scalar multipliers
// over ladder outputs rather than a probability vector.
func AdditiveBlend(in *Input, components []Component) (float64, map[string]float64) {
	parts := make(map[string]float64, len(components))
	var total float64
	for _, c := range components {
		s := Clamp(c.Scorer.Score(in))
		parts[c.Scorer.Name()] = s
		total += s * c.Weight
	}
	return Clamp(total), parts
}
