package report

import (
	"fmt"
	"math"
	"strings"

	"TrendScope/internal/model"
)

// maxTransactionLines caps how many buy/sell pairs a report lists.
const maxTransactionLines = 5

// Format renders an analysis report as a Telegram-ready HTML message.
func Format(r *model.AnalysisReport) string {
	var b strings.Builder

	s := r.Series
	b.WriteString(fmt.Sprintf("📊 <b>TrendScope Report</b> | %s | %s\n\n",
		r.Symbol, r.GeneratedAt.Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Period: %s → %s (%d trading days)\n",
		s.Timestamps[0].Format("2006-01-02"),
		s.Timestamps[len(s.Timestamps)-1].Format("2006-01-02"),
		s.Len()))
	b.WriteString(fmt.Sprintf("Last close: %.2f\n\n", s.LastClose()))

	writeSMASection(&b, r)
	writeRunsSection(&b, &r.Runs)
	writeReturnsSection(&b, &r.ReturnsSummary)
	writeProfitSection(&b, r)
	writeTrendSection(&b, &r.Trend)

	return b.String()
}

func writeSMASection(b *strings.Builder, r *model.AnalysisReport) {
	if r.SMAWarning != "" {
		b.WriteString(fmt.Sprintf("⚠️ %s\n\n", r.SMAWarning))
		return
	}
	last := r.SMA[len(r.SMA)-1]
	if math.IsNaN(last) {
		return
	}
	dev := 0.0
	if last != 0 {
		dev = (r.Series.LastClose() - last) / last * 100
	}
	b.WriteString(fmt.Sprintf("SMA(%d): %.2f (close %+.1f%% vs SMA)\n\n", r.SMAWindow, last, dev))
}

func writeRunsSection(b *strings.Builder, runs *model.RunStatistics) {
	b.WriteString("📈 <b>Runs</b>\n")
	b.WriteString(fmt.Sprintf("  Up days: %d in %d runs (longest %d)\n",
		runs.TotalUpwardDays, runs.UpwardRunCount, runs.LongestUpwardStreak))
	b.WriteString(fmt.Sprintf("  Down days: %d in %d runs (longest %d)\n\n",
		runs.TotalDownwardDays, runs.DownwardRunCount, runs.LongestDownwardStreak))
}

func writeReturnsSection(b *strings.Builder, sum *model.ReturnsSummary) {
	if sum.Count == 0 {
		return
	}
	b.WriteString("📉 <b>Daily returns</b>\n")
	b.WriteString(fmt.Sprintf("  Mean %+.4f%% | StdDev %.4f%%\n", sum.Mean, sum.StdDev))
	b.WriteString(fmt.Sprintf("  Best %+.4f%% | Worst %+.4f%%\n\n", sum.Best, sum.Worst))
}

func writeProfitSection(b *strings.Builder, r *model.AnalysisReport) {
	b.WriteString("💰 <b>Max profit (retrospective)</b>\n")
	b.WriteString(fmt.Sprintf("  Total: %.2f over %d transactions\n",
		r.Profit.TotalProfit, len(r.Profit.Transactions)))

	s := r.Series
	for i, tx := range r.Profit.Transactions {
		if i == maxTransactionLines {
			b.WriteString(fmt.Sprintf("  … %d more\n", len(r.Profit.Transactions)-maxTransactionLines))
			break
		}
		buyPrice := s.Closes[tx.BuyIndex]
		sellPrice := s.Closes[tx.SellIndex]
		b.WriteString(fmt.Sprintf("  Buy %s (%.2f) → Sell %s (%.2f) | %+.2f\n",
			s.Timestamps[tx.BuyIndex].Format("2006-01-02"), buyPrice,
			s.Timestamps[tx.SellIndex].Format("2006-01-02"), sellPrice,
			sellPrice-buyPrice))
	}
	b.WriteString("\n")
}

func writeTrendSection(b *strings.Builder, t *model.TrendAssessment) {
	b.WriteString(fmt.Sprintf("🧭 <b>Trend: %s</b> (score %+.3f)\n", t.Rating, t.TotalScore))
	for _, f := range t.Factors {
		b.WriteString(fmt.Sprintf("  %s (%s): %+.2f ×%.2f = %+.3f\n",
			f.Name, f.Commentary, f.RawScore, f.Weight, f.Weighted))
	}
}
