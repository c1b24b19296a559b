package model

// RunStatistics summarizes maximal streaks of strictly monotonic daily
// price movement. Zero-change days belong to neither direction.
type RunStatistics struct {
	UpwardRuns            []int
	DownwardRuns          []int
	TotalUpwardDays       int
	TotalDownwardDays     int
	LongestUpwardStreak   int
	LongestDownwardStreak int
	UpwardRunCount        int
	DownwardRunCount      int
}

// Transaction is a single buy-then-sell pair of indices into a price series.
type Transaction struct {
	BuyIndex  int
	SellIndex int
}

// ProfitResult is the outcome of the maximum-profit computation:
// the best total achievable with unlimited non-overlapping transactions,
// and the index pairs realizing it in chronological order.
type ProfitResult struct {
	TotalProfit  float64
	Transactions []Transaction
}

// ReturnsSummary holds descriptive statistics over finite daily returns.
// Non-finite values (first day, division by zero) are excluded.
type ReturnsSummary struct {
	Mean   float64
	StdDev float64
	Best   float64
	Worst  float64
	Count  int
}
