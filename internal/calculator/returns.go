package calculator

import (
	"math"

	"TrendScope/internal/model"
)

// CalculateDailyReturns computes day-over-day percentage change of closing
// prices. The result has the same length as the series; element 0 is NaN
// (no prior day). A zero prior close yields ±Inf or NaN per IEEE 754 and is
// passed through, not trapped.
func CalculateDailyReturns(series *model.PriceSeries) []float64 {
	closes := series.Closes
	out := make([]float64, len(closes))
	if len(out) == 0 {
		return out
	}
	out[0] = math.NaN()
	for i := 1; i < len(closes); i++ {
		out[i] = (closes[i] - closes[i-1]) / closes[i-1] * 100
	}
	return out
}

// SummarizeReturns computes descriptive statistics over the finite values of
// a daily-returns sequence. Returns a zero summary when no finite values exist.
func SummarizeReturns(returns []float64) model.ReturnsSummary {
	var sum float64
	var finite []float64
	for _, r := range returns {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		finite = append(finite, r)
		sum += r
	}
	if len(finite) == 0 {
		return model.ReturnsSummary{}
	}

	mean := sum / float64(len(finite))
	best, worst := finite[0], finite[0]
	var sqDiff float64
	for _, r := range finite {
		if r > best {
			best = r
		}
		if r < worst {
			worst = r
		}
		sqDiff += (r - mean) * (r - mean)
	}
	var stdDev float64
	if len(finite) > 1 {
		stdDev = math.Sqrt(sqDiff / float64(len(finite)-1))
	}
	return model.ReturnsSummary{
		Mean:   mean,
		StdDev: stdDev,
		Best:   best,
		Worst:  worst,
		Count:  len(finite),
	}
}
