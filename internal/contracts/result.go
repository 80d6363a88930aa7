package contracts

// Catalyst is a discrete qualitative signal attached to a ticker when its
// raw metrics cross an independent threshold. Catalysts never feed back
// into component scores.
type Catalyst string

const (
	CatalystUnusualVolume     Catalyst = "UNUSUAL_VOLUME"
	CatalystExplosiveGrowth   Catalyst = "EXPLOSIVE_GROWTH"
	CatalystHotSector         Catalyst = "HOT_SECTOR"
	CatalystStrongMomentum    Catalyst = "STRONG_MOMENTUM"
	CatalystUndervaluedGrowth Catalyst = "UNDERVALUED_GROWTH"
	CatalystHighInsiderOwner  Catalyst = "HIGH_INSIDER_OWNERSHIP"
	CatalystSmallCapGrowth    Catalyst = "SMALL_CAP_GROWTH"
	CatalystTechnicalBreakout Catalyst = "TECHNICAL_BREAKOUT"
)

// RiskLevel is an ordinal risk category derived from a risk-points tally
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskVeryHigh RiskLevel = "VERY_HIGH"
)

// ComponentScores is the per-facet score breakdown behind a composite
// multibagger score. Every value is in [0,100].
type ComponentScores struct {
	Size      float64 `json:"size"`
	Growth    float64 `json:"growth"`
	Valuation float64 `json:"valuation"`
	Quality   float64 `json:"quality"`
	Catalyst  float64 `json:"catalyst"`
	Momentum  float64 `json:"momentum"`
}

// KeyMetrics carries the raw inputs a result was scored from, for display
// and reporting. Nil means the provider did not report the attribute.
type KeyMetrics struct {
	MarketCap     float64  `json:"market_cap"`
	CurrentPrice  float64  `json:"current_price"`
	PERatio       *float64 `json:"pe_ratio,omitempty"`
	PEGRatio      *float64 `json:"peg_ratio,omitempty"`
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`
	ProfitMargin  *float64 `json:"profit_margin,omitempty"`
}

// AnalysisResult is the record produced per ticker by a scan. It is a pure
// function of the snapshot it was computed from: no timestamps, no run
// identifiers, so scoring an identical snapshot twice yields an identical
// record. Never mutated after creation.
type AnalysisResult struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector"`

	Score      float64         `json:"score"` // composite multibagger score
	Components ComponentScores `json:"components"`

	Catalysts       []Catalyst `json:"catalysts"`
	RiskLevel       RiskLevel  `json:"risk_level"`
	ReturnPotential string     `json:"return_potential"`

	Metrics KeyMetrics `json:"metrics"`

	// Rank is assigned by the scanner after sorting; 1-based, 0 before
	// ranking.
	Rank int `json:"rank"`
}

// NumCatalysts returns the number of catalysts on the result
func (r *AnalysisResult) NumCatalysts() int {
	return len(r.Catalysts)
}

// QuickScanResult is the lightweight record produced by the simplified
// scan mode (RSI and short-horizon returns only).
type QuickScanResult struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	CurrentPrice float64 `json:"current_price"`
	Returns1M    float64 `json:"returns_1m"`
	Returns3M    float64 `json:"returns_3m"`
	RSI          float64 `json:"rsi"`
	Signal       string  `json:"signal"`
	Score        float64 `json:"score"`
	MarketCap    float64 `json:"market_cap"`
}
