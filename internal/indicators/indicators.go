// Package indicators implements the technical indicator math used by the
// scorers. Everything is causal: an indicator at bar i only looks at bars
// <= i, and every function reports ok=false instead of guessing when the
// series is shorter than its window.
package indicators

import "math"

// SMA returns the simple moving average over the last window values.
func SMA(values []float64, window int) (float64, bool) {
	if window < 1 || len(values) < window {
		return 0, false
	}
	sum := 0.0
	for _, v := range values[len(values)-window:] {
		sum += v
	}
	return sum / float64(window), true
}

// EMASeries returns the full exponentially weighted average series with
// alpha = 2/(span+1), seeded with the first value. Matches a recursive
// EWM without adjustment.
func EMASeries(values []float64, span int) []float64 {
	if span < 1 || len(values) == 0 {
		return nil
	}
	alpha := 2.0 / float64(span+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// EMA returns the latest value of the exponential moving average.
func EMA(values []float64, span int) (float64, bool) {
	series := EMASeries(values, span)
	if series == nil {
		return 0, false
	}
	return series[len(series)-1], true
}

// RSI returns the relative strength index over the given period, using a
// simple rolling mean of gains and losses over the last period deltas.
// When the window has no losses the RSI saturates at 100; a window with
// no movement at all has no defined RSI.
func RSI(closes []float64, period int) (float64, bool) {
	if period < 1 || len(closes) < period+1 {
		return 0, false
	}
	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gain += delta
		} else {
			loss -= delta
		}
	}
	gain /= float64(period)
	loss /= float64(period)

	if loss == 0 {
		if gain == 0 {
			return 0, false
		}
		return 100, true
	}
	rs := gain / loss
	return 100 - 100/(1+rs), true
}

// MACD returns the latest MACD line (EMA12-EMA26), its 9-span signal line
// and the histogram (line minus signal).
func MACD(closes []float64) (line, signal, hist float64, ok bool) {
	if len(closes) == 0 {
		return 0, 0, 0, false
	}
	ema12 := EMASeries(closes, 12)
	ema26 := EMASeries(closes, 26)

	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = ema12[i] - ema26[i]
	}
	sigSeries := EMASeries(macd, 9)

	last := len(closes) - 1
	return macd[last], sigSeries[last], macd[last] - sigSeries[last], true
}

// Bollinger returns the upper, middle and lower bands over the window
// using mult standard deviations.
func Bollinger(closes []float64, window int, mult float64) (upper, middle, lower float64, ok bool) {
	middle, ok = SMA(closes, window)
	if !ok {
		return 0, 0, 0, false
	}
	sd, ok := StdDev(closes[len(closes)-window:])
	if !ok {
		return 0, 0, 0, false
	}
	return middle + mult*sd, middle, middle - mult*sd, true
}

// StdDev returns the sample standard deviation (n-1 denominator).
func StdDev(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1)), true
}

// Return computes the percent change from the close bars ago to the
// latest close.
func Return(closes []float64, bars int) (float64, bool) {
	if bars < 1 || len(closes) < bars {
		return 0, false
	}
	base := closes[len(closes)-bars]
	if base == 0 {
		return 0, false
	}
	return (closes[len(closes)-1]/base - 1) * 100, true
}

// DailyReturns returns the percent-change series between consecutive
// closes as fractions.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		out = append(out, closes[i]/closes[i-1]-1)
	}
	return out
}

// AnnualizedVolatility returns the sample standard deviation of daily
// returns scaled to a 252 trading-day year.
func AnnualizedVolatility(closes []float64) (float64, bool) {
	sd, ok := StdDev(DailyReturns(closes))
	if !ok {
		return 0, false
	}
	return sd * math.Sqrt(252), true
}

// VolumeRatio returns the latest volume divided by its moving average
// over the window.
func VolumeRatio(volumes []float64, window int) (float64, bool) {
	if len(volumes) == 0 {
		return 0, false
	}
	avg, ok := SMA(volumes, window)
	if !ok || avg == 0 {
		return 0, false
	}
	return volumes[len(volumes)-1] / avg, true
}

// RecentVolumeSurge returns the mean of the last window volumes divided
// by the mean over the whole series.
func RecentVolumeSurge(volumes []float64, window int) (float64, bool) {
	if len(volumes) < window || window < 1 {
		return 0, false
	}
	recent, _ := SMA(volumes, window)
	whole, _ := SMA(volumes, len(volumes))
	if whole == 0 {
		return 0, false
	}
	return recent / whole, true
}

// Mean returns the arithmetic mean.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}
