package collector

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"TrendScope/internal/calculator"
	"TrendScope/internal/model"
	"TrendScope/internal/trend"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(100, days), nil
}

// GenerateMockBars produces a deterministic synthetic daily series.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates data fetching and analysis for one fetcher.
type Collector struct {
	Fetcher   Fetcher
	Days      int
	SMAWindow int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, days, smaWindow int) *Collector {
	return &Collector{Fetcher: fetcher, Days: days, SMAWindow: smaWindow}
}

// Analyze fetches the daily history for a symbol and runs the full analysis
// pass, assembling an AnalysisReport.
func (c *Collector) Analyze(symbol string) (*model.AnalysisReport, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, c.Days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no data for %s: %w", symbol, model.ErrEmptySeries)
	}

	series, err := model.NewPriceSeries(symbol, bars)
	if err != nil {
		return nil, fmt.Errorf("build price series for %s: %w", symbol, err)
	}

	report := &model.AnalysisReport{
		ID:          uuid.NewString(),
		Symbol:      symbol,
		GeneratedAt: time.Now(),
		Series:      series,
		SMAWindow:   c.SMAWindow,
	}

	lastSMA := math.NaN()
	if sma, err := calculator.CalculateSMA(series, c.SMAWindow); err != nil {
		log.Printf("[WARN] SMA(%d) unavailable for %s: %v", c.SMAWindow, symbol, err)
		report.SMAWarning = fmt.Sprintf("SMA(%d) unavailable: series has %d days", c.SMAWindow, series.Len())
	} else {
		report.SMA = sma
		lastSMA = sma[len(sma)-1]
	}

	report.Runs = calculator.AnalyzeRuns(series)
	report.DailyReturns = calculator.CalculateDailyReturns(series)
	report.ReturnsSummary = calculator.SummarizeReturns(report.DailyReturns)
	report.Profit = calculator.CalculateMaxProfit(series)

	report.Trend = trend.Evaluate(trend.Inputs{
		LastClose:  series.LastClose(),
		LastSMA:    lastSMA,
		Runs:       report.Runs,
		ReturnMean: report.ReturnsSummary.Mean,
	})

	return report, nil
}
