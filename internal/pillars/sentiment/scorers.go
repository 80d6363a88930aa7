package sentiment

import (
	"strings"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/metrics"
)

const (
	recentAnalystActions = 20
	recentNewsItems      = 10
	recentInsiderTrades  = 20
)

var (
	buyGradeWords  = []string{"buy", "outperform", "overweight", "positive"}
	sellGradeWords = []string{"sell", "underperform", "underweight", "negative"}
)

// scoreAnalysts tallies the most recent grade actions, oldest first on
// the wire, and maps the buy/sell ratios to a score.
func scoreAnalysts(actions []contracts.AnalystAction) (float64, AnalystSummary) {
	summary := AnalystSummary{Recommendation: "HOLD"}
	if len(actions) == 0 {
		return 50, summary
	}

	recent := actions
	if len(recent) > recentAnalystActions {
		recent = recent[len(recent)-recentAnalystActions:]
	}

	for _, a := range recent {
		grade := strings.ToLower(a.ToGrade)
		switch {
		case containsAny(grade, buyGradeWords):
			summary.BuyCount++
		case containsAny(grade, sellGradeWords):
			summary.SellCount++
		default:
			summary.HoldCount++
		}
	}

	total := summary.BuyCount + summary.HoldCount + summary.SellCount
	buyRatio := float64(summary.BuyCount) / float64(total)
	sellRatio := float64(summary.SellCount) / float64(total)

	switch {
	case buyRatio > 0.7:
		summary.Recommendation = "STRONG BUY"
		return 85, summary
	case buyRatio > 0.5:
		summary.Recommendation = "BUY"
		return 70, summary
	case sellRatio > 0.5:
		summary.Recommendation = "SELL"
		return 30, summary
	case sellRatio > 0.3:
		summary.Recommendation = "HOLD/SELL"
		return 40, summary
	default:
		return 55, summary
	}
}

// scoreNews classifies the latest headlines by polarity word counts and
// scales the net ratio into a 10-90 band around neutral.
func (a *Analyzer) scoreNews(items []contracts.NewsItem) (float64, NewsSummary) {
	summary := NewsSummary{}
	if len(items) == 0 {
		return 50, summary
	}

	recent := items
	if len(recent) > recentNewsItems {
		recent = recent[:recentNewsItems]
	}
	summary.NewsCount = len(recent)

	for _, item := range recent {
		title := strings.ToLower(item.Title)
		pos := countMatches(title, a.cfg.News.Positive)
		neg := countMatches(title, a.cfg.News.Negative)
		if pos > neg {
			summary.PositiveCount++
		} else if neg > pos {
			summary.NegativeCount++
		}
	}

	total := summary.PositiveCount + summary.NegativeCount
	if total == 0 {
		return 50, summary
	}
	ratio := float64(summary.PositiveCount-summary.NegativeCount) / float64(total)
	score := 50 + ratio*40
	if score < 10 {
		score = 10
	}
	if score > 90 {
		score = 90
	}
	return score, summary
}

// scoreInstitutional maps institutional ownership to a confidence score.
// Heavy ownership reads as validation; very light ownership as neglect.
func scoreInstitutional(m *metrics.Metrics) float64 {
	inst, ok := metrics.Reported(m.HeldPercentInstitutions)
	if !ok {
		return 50
	}
	pct := inst * 100
	switch {
	case pct > 80:
		return 75
	case pct > 60:
		return 65
	case pct > 40:
		return 55
	case pct < 20:
		return 40
	default:
		return 50
	}
}

// scoreInsiders tallies recent insider trades, most recent first on the
// wire. Buying is bullish; selling is bearish but discounted since
// insiders sell for many reasons.
func scoreInsiders(trades []contracts.InsiderTransaction) float64 {
	if len(trades) == 0 {
		return 50
	}

	recent := trades
	if len(recent) > recentInsiderTrades {
		recent = recent[:recentInsiderTrades]
	}

	buys, sells := 0, 0
	for _, tr := range recent {
		if strings.Contains(tr.Transaction, "Sale") {
			sells++
		} else if strings.Contains(tr.Transaction, "Buy") {
			buys++
		}
	}

	switch {
	case buys > sells*2:
		return 70
	case buys > sells:
		return 60
	case sells > buys*3:
		return 40
	case sells > buys:
		return 45
	default:
		return 50
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func countMatches(s string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			n++
		}
	}
	return n
}
