package model

import "time"

// FactorScore represents a single trend factor's scoring result.
type FactorScore struct {
	Name       string
	RawScore   float64
	Weight     float64
	Weighted   float64
	Commentary string
}

// TrendAssessment is the qualitative classification derived from the
// computed indicators.
type TrendAssessment struct {
	Factors    []FactorScore
	TotalScore float64
	Rating     string
}

// AnalysisReport bundles everything computed for one symbol in one pass.
// It is a value object: created fresh per analysis, never mutated after.
type AnalysisReport struct {
	ID          string
	Symbol      string
	GeneratedAt time.Time

	Series *PriceSeries

	SMAWindow  int
	SMA        []float64
	SMAWarning string

	Runs           RunStatistics
	DailyReturns   []float64
	ReturnsSummary ReturnsSummary
	Profit         ProfitResult
	Trend          TrendAssessment
}
