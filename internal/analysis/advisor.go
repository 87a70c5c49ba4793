package analysis

import "financial-health/internal/model"

const (
	receivablesTurnoverFloor = 8.0
	expenseRatioCeiling      = 0.85
)

// SuggestOptimizations evaluates the advisory rules in a fixed order. Rules are
// independent; each that applies appends one suggestion.
func SuggestOptimizations(r model.RatioSet, m model.Metrics, b model.IndustryBenchmark) []model.Suggestion {
	out := []model.Suggestion{}

	if m.Inventory > 0 && r.InventoryTurnover < b.InventoryTurnover*0.8 {
		out = append(out, model.Suggestion{
			Category:         "Inventory",
			Suggestion:       "Inventory turns slower than the industry benchmark, tying up working capital",
			SavingsPotential: "Medium",
			Action:           "Reduce slow-moving stock",
		})
	}

	if m.AccountsReceivable > 0 && r.ReceivablesTurnover < receivablesTurnoverFloor {
		out = append(out, model.Suggestion{
			Category:         "Receivables",
			Suggestion:       "Customers take too long to pay; cash is locked in receivables",
			SavingsPotential: "High",
			Action:           "Improve collections",
		})
	}

	if m.Revenue > 0 && m.Expenses/m.Revenue > expenseRatioCeiling {
		out = append(out, model.Suggestion{
			Category:         "Expenses",
			Suggestion:       "Operating expenses exceed 85% of revenue",
			SavingsPotential: "High",
			Action:           "Reduce operating costs",
		})
	}

	return out
}
