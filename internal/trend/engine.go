package trend

import (
	"fmt"
	"math"

	"TrendScope/internal/model"
)

// Ratings defines the score-to-label mapping, highest boundary first.
var Ratings = []struct {
	MinScore float64
	Label    string
}{
	{1.2, "Strong Uptrend"},
	{0.4, "Uptrend"},
	{-0.4, "Sideways"},
	{-1.2, "Downtrend"},
}

// DefaultRating is used for scores below every boundary.
const DefaultRating = "Strong Downtrend"

// mapRating maps a total score to a rating label.
func mapRating(totalScore float64) string {
	for _, r := range Ratings {
		if totalScore >= r.MinScore {
			return r.Label
		}
	}
	return DefaultRating
}

// Inputs carries the indicator values the classifier scores.
type Inputs struct {
	LastClose  float64
	LastSMA    float64 // NaN when no SMA is available
	Runs       model.RunStatistics
	ReturnMean float64 // mean finite daily return, percent
}

// Evaluate derives a qualitative trend assessment from computed indicators.
// It is a pure function of its inputs and never feeds back into the
// calculators.
func Evaluate(in Inputs) model.TrendAssessment {
	f1 := scoreSMADeviation(in)
	f2 := scoreRunBalance(in.Runs)
	f3 := scoreReturnMomentum(in.ReturnMean)

	factors := []model.FactorScore{f1, f2, f3}
	totalScore := f1.Weighted + f2.Weighted + f3.Weighted

	return model.TrendAssessment{
		Factors:    factors,
		TotalScore: totalScore,
		Rating:     mapRating(totalScore),
	}
}

// scoreSMADeviation scores how far the last close sits from its moving average.
// Weight: 0.4
func scoreSMADeviation(in Inputs) model.FactorScore {
	if math.IsNaN(in.LastSMA) || in.LastSMA == 0 {
		return model.FactorScore{Name: "SMA deviation", Weight: 0.4, Commentary: "SMA unavailable"}
	}
	deviation := (in.LastClose - in.LastSMA) / in.LastSMA * 100

	var score float64
	switch {
	case deviation >= 10:
		score = 2.0
	case deviation >= 5:
		score = 1.5
	case deviation >= 2:
		score = 1.0
	case deviation >= 0:
		score = 0.5
	case deviation >= -2:
		score = -0.5
	case deviation >= -5:
		score = -1.0
	case deviation >= -10:
		score = -1.5
	default:
		score = -2.0
	}

	return model.FactorScore{
		Name:       "SMA deviation",
		RawScore:   score,
		Weight:     0.4,
		Weighted:   score * 0.4,
		Commentary: fmt.Sprintf("%+.1f%% vs SMA", deviation),
	}
}

// scoreRunBalance scores the balance between upward and downward days and
// their longest streaks.
// Weight: 0.35
func scoreRunBalance(runs model.RunStatistics) model.FactorScore {
	directional := runs.TotalUpwardDays + runs.TotalDownwardDays
	if directional == 0 {
		return model.FactorScore{Name: "Run balance", Weight: 0.35, Commentary: "no directional days"}
	}

	upShare := float64(runs.TotalUpwardDays) / float64(directional)
	score := (upShare - 0.5) * 4 // 0..1 share mapped to -2..2
	if runs.LongestUpwardStreak > 2*runs.LongestDownwardStreak && score < 2 {
		score += 0.25
	}
	if runs.LongestDownwardStreak > 2*runs.LongestUpwardStreak && score > -2 {
		score -= 0.25
	}
	score = math.Max(-2, math.Min(2, score))

	return model.FactorScore{
		Name:       "Run balance",
		RawScore:   score,
		Weight:     0.35,
		Weighted:   score * 0.35,
		Commentary: fmt.Sprintf("%d up / %d down days", runs.TotalUpwardDays, runs.TotalDownwardDays),
	}
}

// scoreReturnMomentum scores the mean daily return.
// Weight: 0.25
func scoreReturnMomentum(mean float64) model.FactorScore {
	var score float64
	switch {
	case mean >= 0.5:
		score = 2.0
	case mean >= 0.2:
		score = 1.0
	case mean >= 0.05:
		score = 0.5
	case mean > -0.05:
		score = 0
	case mean > -0.2:
		score = -0.5
	case mean > -0.5:
		score = -1.0
	default:
		score = -2.0
	}

	return model.FactorScore{
		Name:       "Return momentum",
		RawScore:   score,
		Weight:     0.25,
		Weighted:   score * 0.25,
		Commentary: fmt.Sprintf("mean %+.3f%%/day", mean),
	}
}
