package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendScope/internal/model"
)

func seriesFromCloses(t *testing.T, closes []float64) *model.PriceSeries {
	t.Helper()
	bars := make([]model.OHLCV, len(closes))
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: day.AddDate(0, 0, i), Close: c}
	}
	s, err := model.NewPriceSeries("TEST", bars)
	require.NoError(t, err)
	return s
}

// referenceSMA is a naive rolling mean used as a cross-check against the
// incremental implementation.
func referenceSMA(closes []float64, window, i int) float64 {
	sum := 0.0
	for j := i - window + 1; j <= i; j++ {
		sum += closes[j]
	}
	return sum / float64(window)
}

func TestCalculateSMA_InvalidWindow(t *testing.T) {
	s := seriesFromCloses(t, []float64{1, 2, 3, 4, 5})

	for _, window := range []int{0, -1, 6} {
		_, err := CalculateSMA(s, window)
		assert.ErrorIs(t, err, ErrInvalidWindow, "window=%d", window)
	}
}

func TestCalculateSMA_Values(t *testing.T) {
	closes := []float64{10, 12, 11, 13, 15, 14, 16, 18, 17, 19}
	s := seriesFromCloses(t, closes)

	for _, window := range []int{1, 2, 3, 5, 10} {
		sma, err := CalculateSMA(s, window)
		require.NoError(t, err)
		require.Len(t, sma, len(closes))

		for i := range sma {
			if i < window-1 {
				assert.True(t, math.IsNaN(sma[i]), "window=%d i=%d expected NaN", window, i)
				continue
			}
			assert.InEpsilon(t, referenceSMA(closes, window, i), sma[i], 1e-10,
				"window=%d i=%d", window, i)
		}
	}
}

func TestCalculateSMA_WindowEqualsLength(t *testing.T) {
	s := seriesFromCloses(t, []float64{2, 4, 6})
	sma, err := CalculateSMA(s, 3)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(sma[0]))
	assert.True(t, math.IsNaN(sma[1]))
	assert.InDelta(t, 4.0, sma[2], 1e-12)
}

func TestCalculateSMA_WindowOne(t *testing.T) {
	closes := []float64{3.5, 7.25, 1.0}
	s := seriesFromCloses(t, closes)
	sma, err := CalculateSMA(s, 1)
	require.NoError(t, err)
	assert.Equal(t, closes, sma)
}
