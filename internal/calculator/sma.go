package calculator

import (
	"errors"
	"math"

	"TrendScope/internal/model"
)

// ErrInvalidWindow is returned for a non-positive window or one larger
// than the series.
var ErrInvalidWindow = errors.New("invalid SMA window")

// CalculateSMA computes the simple moving average of closing prices over a
// trailing window. The result has the same length as the series; positions
// before window-1 have no full window behind them and are set to NaN.
func CalculateSMA(series *model.PriceSeries, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if window > series.Len() {
		return nil, ErrInvalidWindow
	}

	closes := series.Closes
	out := make([]float64, len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
