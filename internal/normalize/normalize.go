// Package normalize classifies free-text column labels from uploaded
// documents into canonical financial fields and expense categories.
package normalize

import (
	"math"

	"financial-health/internal/model"
)

// OutcomeKind tells the caller which shape a normalization produced.
type OutcomeKind string

const (
	// OutcomeMetrics carries canonical metrics and an expense breakdown.
	OutcomeMetrics OutcomeKind = "metrics"
	// OutcomeRawText carries only extracted text; no figures could be read.
	OutcomeRawText OutcomeKind = "raw_text"
)

// Outcome is the result of normalizing one document. Callers must branch on
// Kind: Metrics and Expenses are only meaningful for OutcomeMetrics.
type Outcome struct {
	Kind     OutcomeKind
	Metrics  model.Metrics
	Expenses model.ExpenseBreakdown
	// Derived lists fields filled in by a derivation rule rather than read directly.
	Derived []model.Field
	RawText string
}

// Normalizer applies ordered keyword rule tables to labelled rows.
type Normalizer struct {
	fields   []FieldRule
	expenses []ExpenseRule
}

// New returns a Normalizer over the default rule tables.
func New() *Normalizer {
	return &Normalizer{fields: DefaultFieldRules, expenses: DefaultExpenseRules}
}

// NewWithRules returns a Normalizer over custom rule tables.
func NewWithRules(fields []FieldRule, expenses []ExpenseRule) *Normalizer {
	return &Normalizer{fields: fields, expenses: expenses}
}

// Normalize turns a loaded document into an Outcome.
func (n *Normalizer) Normalize(doc model.Document) Outcome {
	if doc.Kind != model.DocumentTabular {
		return Outcome{Kind: OutcomeRawText, RawText: doc.RawText}
	}
	m, derived := n.ExtractMetrics(doc.Rows)
	return Outcome{
		Kind:     OutcomeMetrics,
		Metrics:  m,
		Expenses: n.Categorize(doc.Rows),
		Derived:  derived,
	}
}

// ExtractMetrics sums every classified cell into its canonical field, then
// applies the derivation rules in order:
//  1. net_profit = revenue - expenses, when net_profit is 0/absent and both inputs were present;
//  2. total_assets = total_liabilities + equity, when total_assets is 0/absent and both inputs were present.
func (n *Normalizer) ExtractMetrics(rows []model.Row) (model.Metrics, []model.Field) {
	var m model.Metrics
	seen := map[model.Field]bool{}

	for _, row := range rows {
		for _, cell := range row {
			label := NormalizeLabel(cell.Label)
			if label == "" {
				continue
			}
			f, ok := matchField(n.fields, label)
			if !ok {
				continue
			}
			m.Add(f, SafeNumeric(cell.Value))
			seen[f] = true
		}
	}

	var derived []model.Field
	if (!seen[model.FieldNetProfit] || m.NetProfit == 0) && seen[model.FieldRevenue] && seen[model.FieldExpenses] {
		m.NetProfit = m.Revenue - m.Expenses
		derived = append(derived, model.FieldNetProfit)
	}
	if (!seen[model.FieldTotalAssets] || m.TotalAssets == 0) && seen[model.FieldTotalLiabilities] && seen[model.FieldEquity] {
		m.TotalAssets = m.TotalLiabilities + m.Equity
		derived = append(derived, model.FieldTotalAssets)
	}
	return m, derived
}

// Categorize buckets expense-like columns into the spending taxonomy.
// Labels that match no category and are not expense-like are ignored.
func (n *Normalizer) Categorize(rows []model.Row) model.ExpenseBreakdown {
	out := model.ExpenseBreakdown{}
	for _, row := range rows {
		for _, cell := range row {
			label := NormalizeLabel(cell.Label)
			if label == "" {
				continue
			}
			cat, ok := matchExpense(n.expenses, label)
			if !ok {
				continue
			}
			// Negative amounts (refunds, reversals) are not spending.
			out[cat] += math.Max(SafeNumeric(cell.Value), 0)
		}
	}
	return out
}
