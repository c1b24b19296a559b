package collector

import "TrendScope/internal/model"

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
