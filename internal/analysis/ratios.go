// Package analysis turns canonical metrics into ratios, a creditworthiness
// score, risk findings and cost-optimization suggestions.
//
// Everything here is a pure function of its arguments: no I/O, no shared state.
package analysis

import (
	"math"

	"financial-health/internal/model"
)

// ComputeRatios derives the ratio set from m. Every denominator is guarded:
// a non-positive denominator, or a quotient that overflows, yields 0 for that ratio.
func ComputeRatios(m model.Metrics) model.RatioSet {
	return model.RatioSet{
		ProfitMargin:        safeDiv(m.NetProfit, m.Revenue),
		ROA:                 safeDiv(m.NetProfit, m.TotalAssets),
		ROE:                 safeDiv(m.NetProfit, m.Equity),
		CurrentRatio:        safeDiv(m.CurrentAssets, m.CurrentLiabilities),
		DebtToEquity:        safeDiv(m.TotalLiabilities, m.Equity),
		DebtRatio:           safeDiv(m.TotalLiabilities, m.TotalAssets),
		InventoryTurnover:   safeDiv(m.COGS, m.Inventory),
		ReceivablesTurnover: safeDiv(m.Revenue, m.AccountsReceivable),
	}
}

func safeDiv(numerator, denominator float64) float64 {
	// !(d > 0) also catches NaN.
	if !(denominator > 0) {
		return 0
	}
	q := numerator / denominator
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return 0
	}
	return q
}
