package technical

import (
	"github.com/wonny/oracle/internal/indicators"
	"github.com/wonny/oracle/internal/scoring"
)

// trendScorer compares price against its moving averages, checks the
// average alignment and the 20-day return.
type trendScorer struct{}

func (trendScorer) Name() string { return componentTrend }

func (trendScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	price := in.LastClose()

	sma20, ok20 := indicators.SMA(in.Closes, 20)
	sma50, ok50 := indicators.SMA(in.Closes, 50)
	sma200, ok200 := indicators.SMA(in.Closes, 200)

	if ok20 {
		if price > sma20 {
			score += 10
		} else {
			score -= 10
		}
	}
	if ok50 {
		if price > sma50 {
			score += 15
		} else {
			score -= 15
		}
	}
	if ok200 {
		if price > sma200 {
			score += 20
		} else {
			score -= 20
		}
	}

	if ok20 && ok50 && ok200 {
		if sma20 > sma50 && sma50 > sma200 {
			score += 15
		} else if sma20 < sma50 && sma50 < sma200 {
			score -= 15
		}
	}

	if len(in.Closes) >= 20 {
		base := in.Closes[len(in.Closes)-20]
		if base != 0 {
			r20 := (price - base) / base
			switch {
			case r20 > 0.10:
				score += 10
			case r20 > 0.05:
				score += 5
			case r20 < -0.10:
				score -= 10
			case r20 < -0.05:
				score -= 5
			}
		}
	}

	return scoring.Clamp(score)
}

// momentumScorer reads RSI and the MACD line, crossover and histogram
// direction.
type momentumScorer struct{}

func (momentumScorer) Name() string { return componentMomentum }

func (momentumScorer) Score(in *scoring.Input) float64 {
	score := 50.0

	if rsi, ok := indicators.RSI(in.Closes, 14); ok {
		switch {
		case rsi > 40 && rsi < 60:
			score += 10
		case rsi > 30 && rsi <= 40:
			score += 15
		case rsi <= 30:
			score += 20
		case rsi >= 60 && rsi < 70:
			score += 5
		case rsi >= 70:
			score -= 10
		}
	}

	line, signal, hist, ok := indicators.MACD(in.Closes)
	if !ok || len(in.Closes) < 2 {
		return scoring.Clamp(score)
	}
	_, _, prevHist, _ := indicators.MACD(in.Closes[:len(in.Closes)-1])

	if line > signal {
		score += 15
	} else {
		score -= 10
	}

	if hist > 0 && prevHist < 0 {
		score += 15
	} else if hist < 0 && prevHist > 0 {
		score -= 15
	}

	if hist > prevHist {
		score += 5
	} else {
		score -= 5
	}

	return scoring.Clamp(score)
}

// volatilityScorer rewards names trading mid-band or oversold with calm
// realized volatility.
type volatilityScorer struct{}

func (volatilityScorer) Name() string { return componentVolatility }

func (volatilityScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	price := in.LastClose()

	if upper, _, lower, ok := indicators.Bollinger(in.Closes, 20, 2); ok {
		width := upper - lower
		if width > 0 {
			position := (price - lower) / width
			switch {
			case position > 0.3 && position < 0.7:
				score += 15
			case position <= 0.2:
				score += 20
			case position >= 0.8:
				score -= 10
			}
		}
	}

	if vol, ok := indicators.AnnualizedVolatility(in.Closes); ok {
		switch {
		case vol < 0.20:
			score += 10
		case vol < 0.30:
			score += 5
		case vol > 0.50:
			score -= 10
		}
	}

	return scoring.Clamp(score)
}

// volumeScorer checks whether volume confirms the latest price move and
// whether interest is building.
type volumeScorer struct{}

func (volumeScorer) Name() string { return componentVolume }

func (volumeScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	n := len(in.Closes)

	if ratio, ok := indicators.VolumeRatio(in.Volumes, 20); ok && n >= 2 && in.Closes[n-2] != 0 {
		change := in.Closes[n-1]/in.Closes[n-2] - 1
		switch {
		case change > 0 && ratio > 1.2:
			score += 20
		case change > 0 && ratio > 1.0:
			score += 10
		case change < 0 && ratio > 1.2:
			score -= 20
		case change < 0 && ratio > 1.0:
			score -= 10
		}
	}

	avg10, ok10 := indicators.SMA(in.Volumes, 10)
	avg50, ok50 := indicators.SMA(in.Volumes, 50)
	if ok10 && ok50 {
		if avg10 > avg50*1.2 {
			score += 10
		} else if avg10 < avg50*0.8 {
			score -= 5
		}
	}

	return scoring.Clamp(score)
}

// patternScorer places price within its recent range and looks for a
// higher-highs, higher-lows structure.
type patternScorer struct{}

func (patternScorer) Name() string { return componentPatterns }

func (patternScorer) Score(in *scoring.Input) float64 {
	score := 50.0
	n := len(in.Closes)
	if n == 0 {
		return score
	}
	price := in.Closes[n-1]

	start := n - 60
	if start < 0 {
		start = 0
	}
	recent := in.Closes[start:]
	high, low := recent[0], recent[0]
	for _, c := range recent {
		if c > high {
			high = c
		}
		if c < low {
			low = c
		}
	}
	if high > low {
		position := (price - low) / (high - low)
		if position < 0.3 {
			score += 15
		} else if position > 0.7 {
			score -= 10
		}
	}

	if len(in.Bars) >= 10 {
		lastHigh := in.Bars[len(in.Bars)-1].High
		refHigh := in.Bars[len(in.Bars)-10].High
		lastLow := in.Bars[len(in.Bars)-1].Low
		refLow := in.Bars[len(in.Bars)-10].Low

		if lastHigh > refHigh && lastLow > refLow {
			score += 15
		} else if lastHigh < refHigh && lastLow < refLow {
			score -= 15
		}
	}

	return scoring.Clamp(score)
}
