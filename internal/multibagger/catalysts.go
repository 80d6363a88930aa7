package multibagger

import (
	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/internal/indicators"
	"github.com/wonny/oracle/internal/scoring"
	"github.com/wonny/oracle/internal/strategyconfig"
)

const (
	unusualVolumeSurge = 2.5
	explosiveGrowthMin = 0.40
	strongMomentum6M   = 30.0
	highInsiderMin     = 0.25
	smallCapCeiling    = 2_000_000_000
	smallCapGrowthMin  = 0.25
	breakoutAboveMA50  = 1.05
)

// detectCatalysts tags the discrete catalysts present on a ticker. Tags
// are independent of the catalyst component score and never feed back
// into it.
func (h *Hunter) detectCatalysts(in *scoring.Input) []contracts.Catalyst {
	var out []contracts.Catalyst
	m := in.Metrics

	if surge, ok := indicators.RecentVolumeSurge(in.Volumes, 20); ok && surge > unusualVolumeSurge {
		out = append(out, contracts.CatalystUnusualVolume)
	}

	rev, revOK := reported(m.RevenueGrowth)
	if revOK && rev > explosiveGrowthMin {
		out = append(out, contracts.CatalystExplosiveGrowth)
	}

	if theme, ok := h.cfg.SectorThemes[m.Sector]; ok && theme >= strategyconfig.HotSectorMinTheme {
		out = append(out, contracts.CatalystHotSector)
	}

	if r6, ok := indicators.Return(in.Closes, 126); ok && r6 > strongMomentum6M {
		out = append(out, contracts.CatalystStrongMomentum)
	}

	if peg, ok := reported(m.PEGRatio); ok && peg > 0 && peg < 1 {
		out = append(out, contracts.CatalystUndervaluedGrowth)
	}

	if ins, ok := reported(m.HeldPercentInsiders); ok && ins > highInsiderMin {
		out = append(out, contracts.CatalystHighInsiderOwner)
	}

	if m.MarketCapValue() < smallCapCeiling && revOK && rev > smallCapGrowthMin {
		out = append(out, contracts.CatalystSmallCapGrowth)
	}

	if ma50, ok := indicators.SMA(in.Closes, 50); ok && in.LastClose() > ma50*breakoutAboveMA50 {
		out = append(out, contracts.CatalystTechnicalBreakout)
	}

	return out
}
