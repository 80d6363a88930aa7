package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	avg, ok := SMA(values, 3)
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)

	avg, ok = SMA(values, 5)
	require.True(t, ok)
	assert.InDelta(t, 3.0, avg, 1e-9)

	_, ok = SMA(values, 6)
	assert.False(t, ok, "window longer than series is undefined")

	_, ok = SMA(nil, 1)
	assert.False(t, ok)
}

func TestEMASeriesSeedsWithFirstValue(t *testing.T) {
	values := []float64{10, 20, 30}
	series := EMASeries(values, 3) // alpha = 0.5

	require.Len(t, series, 3)
	assert.InDelta(t, 10.0, series[0], 1e-9)
	assert.InDelta(t, 15.0, series[1], 1e-9)
	assert.InDelta(t, 22.5, series[2], 1e-9)
}

func TestEMASingleValue(t *testing.T) {
	ema, ok := EMA([]float64{42}, 12)
	require.True(t, ok)
	assert.Equal(t, 42.0, ema)
}

func TestRSI(t *testing.T) {
	t.Run("all gains saturates at 100", func(t *testing.T) {
		closes := make([]float64, 15)
		for i := range closes {
			closes[i] = float64(100 + i)
		}
		rsi, ok := RSI(closes, 14)
		require.True(t, ok)
		assert.Equal(t, 100.0, rsi)
	})

	t.Run("flat series is undefined", func(t *testing.T) {
		closes := make([]float64, 15)
		for i := range closes {
			closes[i] = 100
		}
		_, ok := RSI(closes, 14)
		assert.False(t, ok)
	})

	t.Run("balanced gains and losses is 50", func(t *testing.T) {
		// Alternate +1/-1 over 14 deltas: mean gain == mean loss.
		closes := make([]float64, 15)
		closes[0] = 100
		for i := 1; i < 15; i++ {
			if i%2 == 1 {
				closes[i] = closes[i-1] + 1
			} else {
				closes[i] = closes[i-1] - 1
			}
		}
		rsi, ok := RSI(closes, 14)
		require.True(t, ok)
		assert.InDelta(t, 50.0, rsi, 1e-9)
	})

	t.Run("short series", func(t *testing.T) {
		_, ok := RSI([]float64{1, 2, 3}, 14)
		assert.False(t, ok)
	})
}

func TestMACDConstantSeriesIsZero(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 250
	}

	line, signal, hist, ok := MACD(closes)
	require.True(t, ok)
	assert.InDelta(t, 0.0, line, 1e-9)
	assert.InDelta(t, 0.0, signal, 1e-9)
	assert.InDelta(t, 0.0, hist, 1e-9)
}

func TestMACDUptrendIsPositive(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 2*float64(i)
	}

	line, _, _, ok := MACD(closes)
	require.True(t, ok)
	assert.Greater(t, line, 0.0, "fast EMA leads in an uptrend")
}

func TestBollinger(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		if i%2 == 0 {
			closes[i] = 98
		} else {
			closes[i] = 102
		}
	}

	upper, middle, lower, ok := Bollinger(closes, 20, 2)
	require.True(t, ok)
	assert.InDelta(t, 100.0, middle, 1e-9)
	assert.Greater(t, upper, middle)
	assert.Less(t, lower, middle)
	assert.InDelta(t, upper-middle, middle-lower, 1e-9)
}

func TestStdDevSampleDenominator(t *testing.T) {
	sd, ok := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.True(t, ok)
	// Sample variance of this series is 32/7.
	assert.InDelta(t, math.Sqrt(32.0/7.0), sd, 1e-9)

	_, ok = StdDev([]float64{5})
	assert.False(t, ok)
}

func TestReturn(t *testing.T) {
	closes := []float64{100, 110, 120, 150}

	r, ok := Return(closes, 4)
	require.True(t, ok)
	assert.InDelta(t, 50.0, r, 1e-9)

	r, ok = Return(closes, 2)
	require.True(t, ok)
	assert.InDelta(t, 25.0, r, 1e-9)

	_, ok = Return(closes, 5)
	assert.False(t, ok)
}

func TestAnnualizedVolatility(t *testing.T) {
	t.Run("flat series has zero volatility", func(t *testing.T) {
		closes := make([]float64, 40)
		for i := range closes {
			closes[i] = 500
		}
		vol, ok := AnnualizedVolatility(closes)
		require.True(t, ok)
		assert.InDelta(t, 0.0, vol, 1e-9)
	})

	t.Run("too short", func(t *testing.T) {
		_, ok := AnnualizedVolatility([]float64{100, 101})
		assert.False(t, ok)
	})
}

func TestVolumeRatio(t *testing.T) {
	volumes := make([]float64, 20)
	for i := range volumes {
		volumes[i] = 1000
	}
	volumes[19] = 3000

	ratio, ok := VolumeRatio(volumes, 20)
	require.True(t, ok)
	assert.InDelta(t, 3000.0/1100.0, ratio, 1e-9)
}

func TestRecentVolumeSurge(t *testing.T) {
	// 40 quiet bars then 20 bars at triple volume.
	volumes := make([]float64, 60)
	for i := range volumes {
		if i < 40 {
			volumes[i] = 1000
		} else {
			volumes[i] = 3000
		}
	}

	surge, ok := RecentVolumeSurge(volumes, 20)
	require.True(t, ok)
	// Recent mean 3000 over whole-series mean 1666.67.
	assert.InDelta(t, 1.8, surge, 1e-9)
}
