// Package sentiment rates market mood around a ticker: analyst grade
// flow, headline polarity, institutional ownership and insider activity.
// Every component falls back to a neutral 50 when its data is missing,
// so thin coverage never reads as bearish.
package sentiment

import (
	"fmt"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
	"github.com/wonny/oracle/pkg/logger"
)

const (
	componentAnalyst       = "analyst_recommendations"
	componentNews          = "news_sentiment"
	componentInstitutional = "institutional_holdings"
	componentInsider       = "insider_activity"
)

var sentimentScale = scoring.Scale{
	{Min: 70, Label: "VERY BULLISH"},
	{Min: 55, Label: "BULLISH"},
	{Min: 45, Label: "NEUTRAL"},
	{Min: 30, Label: "BEARISH"},
	{Min: 0, Label: "VERY BEARISH"},
}

// Components is the per-facet breakdown of a sentiment score.
type Components struct {
	AnalystRecommendations float64 `json:"analyst_recommendations"`
	NewsSentiment          float64 `json:"news_sentiment"`
	InstitutionalHoldings  float64 `json:"institutional_holdings"`
	InsiderActivity        float64 `json:"insider_activity"`
}

// AnalystSummary details the grade tally behind the analyst component.
type AnalystSummary struct {
	Recommendation string `json:"recommendation"`
	BuyCount       int    `json:"buy_count"`
	HoldCount      int    `json:"hold_count"`
	SellCount      int    `json:"sell_count"`
}

// NewsSummary details the headline tally behind the news component.
type NewsSummary struct {
	PositiveCount int `json:"positive_count"`
	NegativeCount int `json:"negative_count"`
	NewsCount     int `json:"news_count"`
}

// Result is the sentiment pillar output for one ticker.
type Result struct {
	Ticker     string         `json:"ticker"`
	Score      float64        `json:"score"`
	Sentiment  string         `json:"sentiment"`
	Components Components     `json:"components"`
	Analysts   AnalystSummary `json:"analysts"`
	News       NewsSummary    `json:"news"`
}

// Analyzer computes sentiment scores. Safe for concurrent use.
type Analyzer struct {
	cfg *strategyconfig.Config
	log *logger.Logger
}

// NewAnalyzer builds the sentiment analyzer.
func NewAnalyzer(cfg *strategyconfig.Config, log *logger.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, log: log.WithField("engine", "sentiment")}
}

// Analyze scores one snapshot.
func (a *Analyzer) Analyze(snap *contracts.TickerSnapshot) (*Result, error) {
	if snap == nil {
		return nil, contracts.ErrDataUnavailable
	}
	m, err := metrics.Extract(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", snap.Ticker, err)
	}

	analystScore, analysts := scoreAnalysts(snap.AnalystActions)
	newsScore, news := a.scoreNews(snap.News)
	instScore := scoreInstitutional(m)
	insiderScore := scoreInsiders(snap.InsiderTransactions)

	w := a.cfg.Sentiment
	score := analystScore*w.AnalystRec +
		newsScore*w.News +
		instScore*w.Institutional +
		insiderScore*w.Insider

	res := &Result{
		Ticker:    snap.Ticker,
		Score:     score,
		Sentiment: sentimentScale.Rating(score),
		Components: Components{
			AnalystRecommendations: analystScore,
			NewsSentiment:          newsScore,
			InstitutionalHoldings:  instScore,
			InsiderActivity:        insiderScore,
		},
		Analysts: analysts,
		News:     news,
	}

	a.log.WithFields(map[string]interface{}{
		"ticker":    snap.Ticker,
		"score":     score,
		"sentiment": res.Sentiment,
	}).Debug("analyzed ticker")

	return res, nil
}
