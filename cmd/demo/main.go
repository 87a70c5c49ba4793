package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"financial-health/internal/config"
	"financial-health/internal/model"
	"financial-health/internal/pipeline"
	"financial-health/internal/report"
)

// Demo:
// - Build a small trial balance in CSV (or read one via --file)
// - Normalize it and fill in working-capital inputs
// - Assess it against every industry benchmark to show how the pieces fit together
func main() {
	filePath := flag.String("file", "", "Path to a CSV/Excel statement (optional; a built-in sample is used otherwise)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write the forecast CSV of the first industry (e.g. results/forecast.csv)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	filename, content := "sample.csv", []byte(sampleCSV)
	if *filePath != "" {
		filename = *filePath
		content, err = os.ReadFile(*filePath)
		if err != nil {
			panic(err)
		}
	}

	p := pipeline.FromConfig(cfg)
	out, err := p.Ingest(context.Background(), filename, content)
	if err != nil {
		panic(err)
	}
	m := out.Metrics
	fmt.Printf("Revenue=%.2f Expenses=%.2f NetProfit=%.2f TotalAssets=%.2f (derived: %v)\n",
		m.Revenue, m.Expenses, m.NetProfit, m.TotalAssets, out.Derived)
	cats := make([]model.ExpenseCategory, 0, len(out.Expenses))
	for cat := range out.Expenses {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, cat := range cats {
		fmt.Printf("  expense %-14s %.2f\n", cat, out.Expenses[cat])
	}
	fmt.Println("")

	fmt.Printf("%-14s %-6s %-7s %-7s %-8s %-8s\n", "industry", "score", "rating", "risk", "margin", "current")
	var first *model.Assessment
	for _, ind := range model.Industries {
		a := p.Assess(m, string(ind))
		if first == nil {
			first = &a
		}
		fmt.Printf("%-14s %-6d %-7s %-7s %-8.4f %-8.4f\n",
			a.Industry, a.Score, a.Rating, a.RiskLevel, a.Ratios.ProfitMargin, a.Ratios.CurrentRatio)
	}

	if *outCSV != "" && first != nil {
		if err := report.WriteForecastCSVFile(*outCSV, first.Forecast); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d forecast rows to %s\n", len(first.Forecast.RevenueForecast), *outCSV)
	}
}

// One column per line item, one row per period.
const sampleCSV = "Sales Revenue,Operating Expenses,Salary & Wages,Shop Rent,Electricity,Marketing," +
	"Accounts Receivable,Accounts Payable,Inventory,Total Liabilities,Owner Equity\n" +
	"480000,310000,120000,36000,9000,15000,42000,28000,55000,150000,210000\n"
