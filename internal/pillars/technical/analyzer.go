// Package technical rates price action: trend, momentum, volatility,
// volume behavior and chart patterns. Components start from a neutral 50
// and adjust by fixed deltas; an indicator that is undefined on the
// available history makes no adjustment either way.
package technical

import (
	"fmt"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/indicators"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/logger"
)

const (
	componentTrend      = "trend"
	componentMomentum   = "momentum"
	componentVolatility = "volatility"
	componentVolume     = "volume"
	componentPatterns   = "patterns"
)

var (
	trendScale = scoring.Scale{
		{Min: 70, Label: "STRONG UPTREND"},
		{Min: 55, Label: "UPTREND"},
		{Min: 45, Label: "NEUTRAL"},
		{Min: 30, Label: "DOWNTREND"},
		{Min: 0, Label: "STRONG DOWNTREND"},
	}
	momentumScale = scoring.Scale{
		{Min: 70, Label: "STRONG POSITIVE"},
		{Min: 55, Label: "POSITIVE"},
		{Min: 45, Label: "NEUTRAL"},
		{Min: 30, Label: "NEGATIVE"},
		{Min: 0, Label: "STRONG NEGATIVE"},
	}
	overallScale = scoring.Scale{
		{Min: 70, Label: "STRONG BUY"},
		{Min: 55, Label: "BUY"},
		{Min: 45, Label: "HOLD"},
		{Min: 30, Label: "SELL"},
		{Min: 0, Label: "STRONG SELL"},
	}
)

// Components is the per-facet breakdown of a technical score.
type Components struct {
	Trend      float64 `json:"trend"`
	Momentum   float64 `json:"momentum"`
	Volatility float64 `json:"volatility"`
	Volume     float64 `json:"volume"`
	Patterns   float64 `json:"patterns"`
}

// Signals are the human-readable labels derived from the scores.
type Signals struct {
	Trend    string `json:"trend"`
	Momentum string `json:"momentum"`
	Overall  string `json:"overall"`
}

// Indicators carries current indicator values for display. Nil means the
// indicator is undefined on the available history.
type Indicators struct {
	CurrentPrice float64  `json:"current_price"`
	SMA20        *float64 `json:"sma_20,omitempty"`
	SMA50        *float64 `json:"sma_50,omitempty"`
	SMA200       *float64 `json:"sma_200,omitempty"`
	RSI          *float64 `json:"rsi,omitempty"`
	MACD         *float64 `json:"macd,omitempty"`
	MACDSignal   *float64 `json:"macd_signal,omitempty"`
	BBUpper      *float64 `json:"bb_upper,omitempty"`
	BBLower      *float64 `json:"bb_lower,omitempty"`
	VolumeRatio  *float64 `json:"volume_ratio,omitempty"`
}

// Result is the technical pillar output for one ticker.
type Result struct {
	Ticker     string     `json:"ticker"`
	Score      float64    `json:"score"`
	Components Components `json:"components"`
	Signals    Signals    `json:"signals"`
	Indicators Indicators `json:"indicators"`
}

// Analyzer computes technical scores. Safe for concurrent use.
type Analyzer struct {
	cfg        *strategyconfig.Config
	components []scoring.Component
	log        *logger.Logger
}

// NewAnalyzer builds the technical analyzer with weights from the
// strategy configuration.
func NewAnalyzer(cfg *strategyconfig.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{
		cfg: cfg,
		components: []scoring.Component{
			{Scorer: trendScorer{}, Weight: cfg.Technical.Trend},
			{Scorer: momentumScorer{}, Weight: cfg.Technical.Momentum},
			{Scorer: volatilityScorer{}, Weight: cfg.Technical.Volatility},
			{Scorer: volumeScorer{}, Weight: cfg.Technical.Volume},
			{Scorer: patternScorer{}, Weight: cfg.Technical.Patterns},
		},
		log: log.WithField("engine", "technical"),
	}
}

// Analyze scores one snapshot. Requires the configured minimum bars of
// history.
func (a *Analyzer) Analyze(snap *contracts.TickerSnapshot) (*Result, error) {
	if snap == nil {
		return nil, contracts.ErrDataUnavailable
	}
	if len(snap.History) < a.cfg.Scan.MinHistoryBars {
		return nil, fmt.Errorf("%w: %s has %d bars, need %d",
			contracts.ErrInsufficientHistory, snap.Ticker, len(snap.History), a.cfg.Scan.MinHistoryBars)
	}

	m, err := metrics.Extract(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", snap.Ticker, err)
	}

	in := scoring.NewInput(m, snap)
	score, parts := scoring.WeightedAverage(in, a.components)

	res := &Result{
		Ticker: snap.Ticker,
		Score:  score,
		Components: Components{
			Trend:      parts[componentTrend],
			Momentum:   parts[componentMomentum],
			Volatility: parts[componentVolatility],
			Volume:     parts[componentVolume],
			Patterns:   parts[componentPatterns],
		},
		Signals: Signals{
			Trend:    trendScale.Rating(parts[componentTrend]),
			Momentum: momentumScale.Rating(parts[componentMomentum]),
			Overall:  overallScale.Rating(score),
		},
		Indicators: currentIndicators(in),
	}

	a.log.WithFields(map[string]interface{}{
		"ticker": snap.Ticker,
		"score":  score,
		"signal": res.Signals.Overall,
	}).Debug("analyzed ticker")

	return res, nil
}

func currentIndicators(in *scoring.Input) Indicators {
	out := Indicators{CurrentPrice: in.LastClose()}

	setIf := func(dest **float64, v float64, ok bool) {
		if ok {
			*dest = &v
		}
	}

	sma20, ok := indicators.SMA(in.Closes, 20)
	setIf(&out.SMA20, sma20, ok)
	sma50, ok := indicators.SMA(in.Closes, 50)
	setIf(&out.SMA50, sma50, ok)
	sma200, ok := indicators.SMA(in.Closes, 200)
	setIf(&out.SMA200, sma200, ok)

	rsi, ok := indicators.RSI(in.Closes, 14)
	setIf(&out.RSI, rsi, ok)

	if line, signal, _, ok := indicators.MACD(in.Closes); ok {
		out.MACD = &line
		out.MACDSignal = &signal
	}

	if upper, _, lower, ok := indicators.Bollinger(in.Closes, 20, 2); ok {
		out.BBUpper = &upper
		out.BBLower = &lower
	}

	ratio, ok := indicators.VolumeRatio(in.Volumes, 20)
	setIf(&out.VolumeRatio, ratio, ok)

	return out
}
