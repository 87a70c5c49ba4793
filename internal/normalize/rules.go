package normalize

import (
	"strings"

	"financial-health/internal/model"

	"golang.org/x/text/unicode/norm"
)

// FieldRule maps a column label to a canonical field when the normalized
// label contains any of Keywords.
type FieldRule struct {
	Field    model.Field
	Keywords []string
}

// ExpenseRule maps a column label to an expense category.
type ExpenseRule struct {
	Category model.ExpenseCategory
	Keywords []string
}

// DefaultFieldRules is evaluated top to bottom; the first match wins.
// Order matters: "net income" is a revenue label because "income" is tested first.
var DefaultFieldRules = []FieldRule{
	{Field: model.FieldRevenue, Keywords: []string{"revenue", "sales", "income"}},
	{Field: model.FieldExpenses, Keywords: []string{"expense", "cost"}},
	{Field: model.FieldNetProfit, Keywords: []string{"profit", "net_income"}},
	{Field: model.FieldAccountsReceivable, Keywords: []string{"receivable"}},
	{Field: model.FieldAccountsPayable, Keywords: []string{"payable"}},
	{Field: model.FieldInventory, Keywords: []string{"inventory"}},
	{Field: model.FieldTotalAssets, Keywords: []string{"asset"}},
	{Field: model.FieldTotalLiabilities, Keywords: []string{"liability", "liabilities"}},
	{Field: model.FieldEquity, Keywords: []string{"equity", "capital"}},
}

// DefaultExpenseRules is evaluated top to bottom; the first match wins.
var DefaultExpenseRules = []ExpenseRule{
	{Category: model.ExpenseSalaries, Keywords: []string{"salary", "wages", "payroll"}},
	{Category: model.ExpenseRent, Keywords: []string{"rent", "lease"}},
	{Category: model.ExpenseUtilities, Keywords: []string{"electricity", "water", "gas"}},
	{Category: model.ExpenseMarketing, Keywords: []string{"marketing", "ads", "promotion"}},
	{Category: model.ExpenseSupplies, Keywords: []string{"supplies", "materials", "inventory"}},
	{Category: model.ExpenseMaintenance, Keywords: []string{"maintenance", "repair"}},
	{Category: model.ExpenseTransportation, Keywords: []string{"transport", "shipping", "logistics"}},
}

// otherExpenseKeywords roll an otherwise unmatched label into ExpenseOther.
var otherExpenseKeywords = []string{"expense", "cost"}

// NormalizeLabel folds a column label for keyword matching: NFKC, trimmed, lower-case.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(label)))
}

// ContainsAny reports whether text contains any of keywords.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func matchField(rules []FieldRule, label string) (model.Field, bool) {
	for _, r := range rules {
		if ContainsAny(label, r.Keywords) {
			return r.Field, true
		}
	}
	return "", false
}

func matchExpense(rules []ExpenseRule, label string) (model.ExpenseCategory, bool) {
	for _, r := range rules {
		if ContainsAny(label, r.Keywords) {
			return r.Category, true
		}
	}
	if ContainsAny(label, otherExpenseKeywords) {
		return model.ExpenseOther, true
	}
	return "", false
}
