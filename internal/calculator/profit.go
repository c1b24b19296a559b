package calculator

import "TrendScope/internal/model"

// CalculateMaxProfit computes the maximum total profit achievable with any
// number of non-overlapping buy/sell transactions over the series, along with
// the index pairs realizing it.
//
// Single forward pass: buy when holding nothing and tomorrow closes strictly
// higher, sell when holding and tomorrow closes strictly lower, force-close
// any open position at the final index. The greedy walk captures every
// maximal upward run, which is optimal for the unlimited-transactions
// problem.
func CalculateMaxProfit(series *model.PriceSeries) model.ProfitResult {
	closes := series.Closes
	n := len(closes)
	if n < 2 {
		return model.ProfitResult{}
	}

	var result model.ProfitResult
	buyIndex := -1
	var buyPrice float64

	for i := 0; i < n-1; i++ {
		if buyIndex < 0 && closes[i] < closes[i+1] {
			buyIndex = i
			buyPrice = closes[i]
		} else if buyIndex >= 0 && closes[i] > closes[i+1] {
			result.TotalProfit += closes[i] - buyPrice
			result.Transactions = append(result.Transactions, model.Transaction{
				BuyIndex:  buyIndex,
				SellIndex: i,
			})
			buyIndex = -1
		}
	}

	if buyIndex >= 0 {
		result.TotalProfit += closes[n-1] - buyPrice
		result.Transactions = append(result.Transactions, model.Transaction{
			BuyIndex:  buyIndex,
			SellIndex: n - 1,
		})
	}
	return result
}
