package model

import (
	"errors"
	"fmt"
	"time"
)

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds a chronological closing-price history for one symbol.
// It is constructed once from fetched bars and treated as read-only afterwards,
// so concurrent readers need no locking.
type PriceSeries struct {
	Symbol     string
	Timestamps []time.Time
	Closes     []float64
	FetchedAt  time.Time
}

// ErrEmptySeries is returned when a series is constructed from zero bars.
var ErrEmptySeries = errors.New("price series is empty")

// NewPriceSeries builds a PriceSeries from daily bars, enforcing strictly
// ascending timestamps (which also rules out duplicates).
func NewPriceSeries(symbol string, bars []OHLCV) (*PriceSeries, error) {
	if len(bars) == 0 {
		return nil, ErrEmptySeries
	}
	s := &PriceSeries{
		Symbol:     symbol,
		Timestamps: make([]time.Time, len(bars)),
		Closes:     make([]float64, len(bars)),
		FetchedAt:  time.Now(),
	}
	for i, b := range bars {
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return nil, fmt.Errorf("bars out of order at index %d: %s not before %s",
				i, bars[i-1].Time.Format("2006-01-02"), b.Time.Format("2006-01-02"))
		}
		s.Timestamps[i] = b.Time
		s.Closes[i] = b.Close
	}
	return s, nil
}

// Len returns the number of trading days in the series.
func (s *PriceSeries) Len() int { return len(s.Closes) }

// LastClose returns the most recent closing price, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Closes) == 0 {
		return 0
	}
	return s.Closes[len(s.Closes)-1]
}
