package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriceSeries(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	bars := []OHLCV{
		{Time: day, Close: 10},
		{Time: day.AddDate(0, 0, 1), Close: 11},
		{Time: day.AddDate(0, 0, 2), Close: 9.5},
	}

	s, err := NewPriceSeries("AAPL", bars)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{10, 11, 9.5}, s.Closes)
	assert.InDelta(t, 9.5, s.LastClose(), 1e-12)
	assert.True(t, s.Timestamps[0].Before(s.Timestamps[1]))
}

func TestNewPriceSeries_Empty(t *testing.T) {
	_, err := NewPriceSeries("AAPL", nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNewPriceSeries_OutOfOrder(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	bars := []OHLCV{
		{Time: day.AddDate(0, 0, 1), Close: 10},
		{Time: day, Close: 11},
	}
	_, err := NewPriceSeries("AAPL", bars)
	assert.Error(t, err)
}

func TestNewPriceSeries_DuplicateTimestamp(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	bars := []OHLCV{
		{Time: day, Close: 10},
		{Time: day, Close: 11},
	}
	_, err := NewPriceSeries("AAPL", bars)
	assert.Error(t, err)
}

func TestPriceSeries_EmptyAccessors(t *testing.T) {
	s := &PriceSeries{Symbol: "X"}
	assert.Zero(t, s.Len())
	assert.Zero(t, s.LastClose())
}
