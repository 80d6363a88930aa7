package multibagger

import "github.com/wonny/oracle/internal/metrics"

// Pre-filter tally thresholds. The tally only orders candidates that
// already passed the gates; it is not a score on the 0-100 scale.
const (
	tallySmallCapCeiling = 2_000_000_000
	tallyHighGrowthMin   = 0.30
	tallyStrongMarginMin = 0.10
)

// PreFilterScore applies the cheap fundamental gates and, for survivors,
// returns a tally used to rank candidates for deep analysis. The gates
// require a small-to-mid cap, growing and profitable name; an unreported
// or zero growth or margin fails its gate.
func (h *Hunter) PreFilterScore(m *metrics.Metrics) (int, bool) {
	gates := h.cfg.PreFilter

	mcap := m.MarketCapValue()
	if mcap < gates.MinMarketCap || mcap > gates.MaxMarketCap {
		return 0, false
	}

	rev, ok := reported(m.RevenueGrowth)
	if !ok || rev < gates.MinRevenueGrowth {
		return 0, false
	}

	margin, ok := reported(m.ProfitMargin)
	if !ok || margin < gates.MinProfitMargin {
		return 0, false
	}

	tally := 0
	if mcap < tallySmallCapCeiling {
		tally += 3
	}
	if rev > tallyHighGrowthMin {
		tally += 3
	}
	if margin > tallyStrongMarginMin {
		tally += 2
	}
	return tally, true
}
