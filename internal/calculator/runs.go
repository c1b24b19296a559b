package calculator

import "TrendScope/internal/model"

// AnalyzeRuns segments the closing-price sequence into maximal runs of
// strictly monotonic daily movement and reports their statistics.
//
// A zero-change day neither extends nor closes the run in progress: the
// counters stay frozen and the run may resume on the next directional day.
// Existing downstream fixtures depend on exactly this behavior.
func AnalyzeRuns(series *model.PriceSeries) model.RunStatistics {
	closes := series.Closes

	var upwardRuns, downwardRuns []int
	upRun, downRun := 0, 0

	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		switch {
		case delta > 0:
			upRun++
			if downRun > 0 {
				downwardRuns = append(downwardRuns, downRun)
				downRun = 0
			}
		case delta < 0:
			downRun++
			if upRun > 0 {
				upwardRuns = append(upwardRuns, upRun)
				upRun = 0
			}
		}
	}

	// Flush runs still open at the end of the series.
	if upRun > 0 {
		upwardRuns = append(upwardRuns, upRun)
	}
	if downRun > 0 {
		downwardRuns = append(downwardRuns, downRun)
	}

	stats := model.RunStatistics{
		UpwardRuns:       upwardRuns,
		DownwardRuns:     downwardRuns,
		UpwardRunCount:   len(upwardRuns),
		DownwardRunCount: len(downwardRuns),
	}
	for _, r := range upwardRuns {
		stats.TotalUpwardDays += r
		if r > stats.LongestUpwardStreak {
			stats.LongestUpwardStreak = r
		}
	}
	for _, r := range downwardRuns {
		stats.TotalDownwardDays += r
		if r > stats.LongestDownwardStreak {
			stats.LongestDownwardStreak = r
		}
	}
	return stats
}
