package contracts

import "time"

// TickerSnapshot is the raw per-ticker payload handed over by the market
// data provider. Info is a loosely structured attribute mapping exactly as
// the provider returns it; it is validated once, at the metric extractor
// boundary, and nowhere else. Any attribute may be absent.
type TickerSnapshot struct {
	Ticker string                 `json:"ticker"`
	Info   map[string]interface{} `json:"info"`

	// Time-ordered price/volume series, oldest first.
	History []Bar `json:"history"`

	// Optional auxiliary records. Empty slices mean "no data".
	AnalystActions      []AnalystAction      `json:"analyst_actions,omitempty"`
	News                []NewsItem           `json:"news,omitempty"`
	InsiderTransactions []InsiderTransaction `json:"insider_transactions,omitempty"`
}

// Bar is a single OHLCV candle
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// AnalystAction is one analyst recommendation change
type AnalystAction struct {
	Date    time.Time `json:"date"`
	Firm    string    `json:"firm"`
	ToGrade string    `json:"to_grade"`
}

// NewsItem is one news headline
type NewsItem struct {
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
}

// InsiderTransaction is one reported insider trade
type InsiderTransaction struct {
	Date        time.Time `json:"date"`
	Insider     string    `json:"insider"`
	Transaction string    `json:"transaction"` // e.g. "Buy", "Sale"
	Shares      int64     `json:"shares"`
}

// Closes returns the close prices of the history, oldest first
func (s *TickerSnapshot) Closes() []float64 {
	closes := make([]float64, len(s.History))
	for i, b := range s.History {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns the volumes of the history, oldest first
func (s *TickerSnapshot) Volumes() []int64 {
	volumes := make([]int64, len(s.History))
	for i, b := range s.History {
		volumes[i] = b.Volume
	}
	return volumes
}
