// Package report renders stored assessments for people: labelled tables,
// a PDF document and a forecast CSV. Nothing here recomputes a figure.
package report

import (
	"strconv"
	"time"

	"financial-health/internal/i18n"
	"financial-health/internal/model"
)

// Table is one titled section of a report.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Project lays an assessment out as report tables with labels in lang.
func Project(a model.Assessment, lang string) []Table {
	tr := func(key string) string { return i18n.Translate(key, lang) }

	summary := Table{
		Title: tr("key_findings"),
		Rows: [][]string{
			{tr("industry"), string(a.Industry)},
			{tr("financial_health_score"), strconv.Itoa(a.Score) + "/100"},
			{tr("creditworthiness_rating"), string(a.Rating)},
			{tr("risk_level"), tr(a.RiskLevel.TranslationKey())},
			{tr("assessment_date"), fmtDate(a.GeneratedAt)},
		},
	}

	ratios := Table{Title: tr("industry_benchmarks"), Header: []string{"", "value", "benchmark"}}
	bench := map[string]float64{
		"profit_margin":      a.Benchmarks.ProfitMargin,
		"debt_to_equity":     a.Benchmarks.DebtToEquity,
		"current_ratio":      a.Benchmarks.CurrentRatio,
		"inventory_turnover": a.Benchmarks.InventoryTurnover,
	}
	for _, r := range a.Ratios.Named() {
		b := ""
		if v, ok := bench[r.Name]; ok {
			b = fmtRatio(v)
		}
		ratios.Rows = append(ratios.Rows, []string{tr(r.Name), fmtRatio(r.Value), b})
	}

	factors := Table{Title: tr("financial_health_score"), Header: []string{"", "value", "points"}}
	for _, f := range a.ScoreFactors {
		factors.Rows = append(factors.Rows, []string{tr(f.Name), fmtRatio(f.Value), strconv.Itoa(f.Points)})
	}

	risks := Table{Title: tr("identified_risks"), Header: []string{"type", "severity", "description"}}
	for _, r := range a.Risks {
		risks.Rows = append(risks.Rows, []string{r.Type, tr(r.Severity.TranslationKey()), r.Description})
	}

	suggestions := Table{Title: tr("cost_optimizations"), Header: []string{"category", "suggestion", "savings", "action"}}
	for _, s := range a.Suggestions {
		suggestions.Rows = append(suggestions.Rows, []string{s.Category, s.Suggestion, s.SavingsPotential, s.Action})
	}

	fc := Table{Title: tr("forecast"), Header: []string{"period", tr("revenue"), tr("net_profit")}}
	for i, p := range a.Forecast.RevenueForecast {
		profit := ""
		if i < len(a.Forecast.ProfitForecast) {
			profit = fmtAmount(a.Forecast.ProfitForecast[i].Value)
		}
		fc.Rows = append(fc.Rows, []string{strconv.Itoa(p.Period), fmtAmount(p.Value), profit})
	}

	return []Table{summary, ratios, factors, risks, suggestions, fc}
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 02, 2006")
}

func fmtRatio(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}

func fmtAmount(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
