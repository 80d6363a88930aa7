package strategyconfig

// Config is the full scoring strategy configuration: every weight vector,
// threshold table and sector-theme multiplier used by the scorers and
// aggregators. It is built once and injected into constructors; treat it
// as read-only after construction.
type Config struct {
	// SectorThemes maps provider sector labels to theme multipliers used
	// by the catalyst scorer (multiplier x 15 points) and the hot-sector
	// catalyst tag (multiplier >= HotSectorMinTheme).
	SectorThemes map[string]float64

	Multibagger MultibaggerWeights
	Fundamental FundamentalWeights
	Technical   TechnicalWeights
	Sentiment   SentimentWeights

	PreFilter PreFilterConfig
	Scan      ScanDefaults

	News NewsLexicon
}

// MultibaggerWeights is the additive blend applied to the six multibagger
// component scores. Unlike the pillar weight vectors this is a scalar
// blend over ladder outputs, clamped after summation.
type MultibaggerWeights struct {
	Size      float64
	Growth    float64
	Valuation float64
	Quality   float64
	Catalyst  float64
	Momentum  float64
}

// Sum returns the sum of all weights
func (w MultibaggerWeights) Sum() float64 {
	return w.Size + w.Growth + w.Valuation + w.Quality + w.Catalyst + w.Momentum
}

// FundamentalWeights is the weighted average over the fundamental pillar
// components, each already on the 0-100 scale.
type FundamentalWeights struct {
	Valuation       float64
	Profitability   float64
	FinancialHealth float64
	Growth          float64
	Dividends       float64
}

// Sum returns the sum of all weights
func (w FundamentalWeights) Sum() float64 {
	return w.Valuation + w.Profitability + w.FinancialHealth + w.Growth + w.Dividends
}

// TechnicalWeights is the weighted average over the technical pillar
// components.
type TechnicalWeights struct {
	Trend      float64
	Momentum   float64
	Volatility float64
	Volume     float64
	Patterns   float64
}

// Sum returns the sum of all weights
func (w TechnicalWeights) Sum() float64 {
	return w.Trend + w.Momentum + w.Volatility + w.Volume + w.Patterns
}

// SentimentWeights is the weighted average over the sentiment pillar
// components.
type SentimentWeights struct {
	AnalystRec    float64
	News          float64
	Institutional float64
	Insider       float64
}

// Sum returns the sum of all weights
func (w SentimentWeights) Sum() float64 {
	return w.AnalystRec + w.News + w.Institutional + w.Insider
}

// PreFilterConfig gates the cheap pre-filter pass
type PreFilterConfig struct {
	MinMarketCap     float64 // USD
	MaxMarketCap     float64 // USD
	MinRevenueGrowth float64 // fraction, e.g. 0.15
	MinProfitMargin  float64 // fraction
}

// ScanDefaults holds scan-level thresholds
type ScanDefaults struct {
	MinScore       float64 // minimum multibagger score to keep a candidate
	MinHistoryBars int     // bars required before full analysis
}

// NewsLexicon holds the headline polarity word lists
type NewsLexicon struct {
	Positive []string
	Negative []string
}

// HotSectorMinTheme is the theme multiplier at which a sector counts as
// "hot" for catalyst tagging.
const HotSectorMinTheme = 1.5

// Default returns the reference strategy configuration. The constants
// encode the scoring methodology and changing any of them changes every
// score the system produces.
func Default() *Config {
	return &Config{
		SectorThemes: map[string]float64{
			"Mining":             2.0,
			"Energy":             1.5,
			"Technology":         2.0,
			"Consumer Cyclical":  1.5,
			"Financial Services": 1.0,
			"Industrials":        1.5,
			"Basic Materials":    1.5,
		},

		Multibagger: MultibaggerWeights{
			Size:      0.20,
			Growth:    0.25,
			Valuation: 0.15,
			Quality:   0.15,
			Catalyst:  0.15,
			Momentum:  0.10,
		},

		Fundamental: FundamentalWeights{
			Valuation:       0.25,
			Profitability:   0.25,
			FinancialHealth: 0.20,
			Growth:          0.20,
			Dividends:       0.10,
		},

		Technical: TechnicalWeights{
			Trend:      0.30,
			Momentum:   0.25,
			Volatility: 0.15,
			Volume:     0.15,
			Patterns:   0.15,
		},

		Sentiment: SentimentWeights{
			AnalystRec:    0.35,
			News:          0.25,
			Institutional: 0.25,
			Insider:       0.15,
		},

		PreFilter: PreFilterConfig{
			MinMarketCap:     500_000_000,
			MaxMarketCap:     10_000_000_000,
			MinRevenueGrowth: 0.15,
			MinProfitMargin:  0,
		},

		Scan: ScanDefaults{
			MinScore:       70,
			MinHistoryBars: 50,
		},

		News: NewsLexicon{
			Positive: []string{
				"up", "rise", "gain", "beat", "surge", "bull", "high", "growth",
				"profit", "strong", "buy", "upgrade", "positive", "outperform",
			},
			Negative: []string{
				"down", "fall", "drop", "miss", "decline", "bear", "low", "loss",
				"weak", "sell", "downgrade", "negative", "underperform", "concern",
			},
		},
	}
}
