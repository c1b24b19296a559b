package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDailyReturns_Values(t *testing.T) {
	s := seriesFromCloses(t, []float64{100, 110, 99, 99})
	returns := CalculateDailyReturns(s)

	require.Len(t, returns, 4)
	assert.True(t, math.IsNaN(returns[0]), "first day has no prior close")
	assert.InDelta(t, 10.0, returns[1], 1e-12)
	assert.InDelta(t, -10.0, returns[2], 1e-12)
	assert.InDelta(t, 0.0, returns[3], 1e-12)
}

func TestCalculateDailyReturns_SingleElement(t *testing.T) {
	returns := CalculateDailyReturns(seriesFromCloses(t, []float64{100}))
	require.Len(t, returns, 1)
	assert.True(t, math.IsNaN(returns[0]))
}

func TestCalculateDailyReturns_ZeroPriorClose(t *testing.T) {
	s := seriesFromCloses(t, []float64{0, 5})
	returns := CalculateDailyReturns(s)
	assert.True(t, math.IsInf(returns[1], 1), "division by zero propagates as +Inf")
}

func TestSummarizeReturns(t *testing.T) {
	s := seriesFromCloses(t, []float64{100, 110, 99})
	summary := SummarizeReturns(CalculateDailyReturns(s))

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 0.0, summary.Mean, 1e-12)
	assert.InDelta(t, 10.0, summary.Best, 1e-12)
	assert.InDelta(t, -10.0, summary.Worst, 1e-12)
	assert.InDelta(t, math.Sqrt(200), summary.StdDev, 1e-12)
}

func TestSummarizeReturns_SkipsNonFinite(t *testing.T) {
	summary := SummarizeReturns([]float64{math.NaN(), math.Inf(1), math.Inf(-1), 2.5})
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 2.5, summary.Mean, 1e-12)
	assert.Zero(t, summary.StdDev)
}

func TestSummarizeReturns_Empty(t *testing.T) {
	summary := SummarizeReturns([]float64{math.NaN()})
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.Mean)
}
