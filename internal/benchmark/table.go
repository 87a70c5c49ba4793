// Package benchmark holds the per-industry reference thresholds used to put
// ratios into context. A Table is built once and passed to whoever needs it.
package benchmark

import (
	"errors"
	"fmt"
	"os"

	"financial-health/internal/model"

	"gopkg.in/yaml.v3"
)

// Table is an immutable industry → benchmark lookup. Lookups are total:
// any category outside the table resolves to model.DefaultIndustry.
type Table struct {
	entries map[model.Industry]model.IndustryBenchmark
}

// Defaults returns the built-in thresholds.
func Defaults() map[model.Industry]model.IndustryBenchmark {
	return map[model.Industry]model.IndustryBenchmark{
		model.IndustryManufacturing: {ProfitMargin: 0.15, DebtToEquity: 1.5, CurrentRatio: 1.8, InventoryTurnover: 6},
		model.IndustryRetail:        {ProfitMargin: 0.05, DebtToEquity: 1.0, CurrentRatio: 1.5, InventoryTurnover: 8},
		model.IndustryServices:      {ProfitMargin: 0.20, DebtToEquity: 0.8, CurrentRatio: 2.0, InventoryTurnover: 0},
		model.IndustryAgriculture:   {ProfitMargin: 0.10, DebtToEquity: 1.2, CurrentRatio: 1.6, InventoryTurnover: 4},
		model.IndustryLogistics:     {ProfitMargin: 0.08, DebtToEquity: 1.3, CurrentRatio: 1.4, InventoryTurnover: 12},
		model.IndustryEcommerce:     {ProfitMargin: 0.12, DebtToEquity: 0.9, CurrentRatio: 1.7, InventoryTurnover: 10},
	}
}

// Default returns a Table over the built-in thresholds.
func Default() *Table {
	t, _ := New(Defaults())
	return t
}

// New copies entries into a Table. The default industry must be present.
func New(entries map[model.Industry]model.IndustryBenchmark) (*Table, error) {
	if _, ok := entries[model.DefaultIndustry]; !ok {
		return nil, fmt.Errorf("benchmark table must define %q", model.DefaultIndustry)
	}
	cp := make(map[model.Industry]model.IndustryBenchmark, len(entries))
	for k, v := range entries {
		if !k.Known() {
			return nil, fmt.Errorf("unknown industry %q in benchmark table", k)
		}
		if v.ProfitMargin < 0 || v.DebtToEquity < 0 || v.CurrentRatio < 0 || v.InventoryTurnover < 0 {
			return nil, fmt.Errorf("benchmark for %q has negative thresholds", k)
		}
		cp[k] = v
	}
	return &Table{entries: cp}, nil
}

// Lookup resolves category (case-insensitive) and returns the industry used and its thresholds.
func (t *Table) Lookup(category string) (model.Industry, model.IndustryBenchmark) {
	ind := model.ParseIndustry(category)
	if b, ok := t.entries[ind]; ok {
		return ind, b
	}
	return model.DefaultIndustry, t.entries[model.DefaultIndustry]
}

// Entry is one row of a Table listing.
type Entry struct {
	Industry  model.Industry          `json:"industry"`
	Benchmark model.IndustryBenchmark `json:"benchmark"`
}

// All lists the table in model.Industries order.
func (t *Table) All() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, ind := range model.Industries {
		if b, ok := t.entries[ind]; ok {
			out = append(out, Entry{Industry: ind, Benchmark: b})
		}
	}
	return out
}

type fileWrapper struct {
	Benchmarks map[string]model.IndustryBenchmark `yaml:"benchmarks"`
}

// LoadFile reads a YAML benchmark file and overlays it on the defaults.
// Industries omitted from the file keep their built-in thresholds.
//
//	benchmarks:
//	  retail: {profit_margin: 0.06, debt_to_equity: 1.1, current_ratio: 1.5, inventory_turnover: 9}
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w fileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse benchmark file %s: %w", path, err)
	}
	if len(w.Benchmarks) == 0 {
		return nil, errors.New("benchmark file defines no benchmarks")
	}
	entries := Defaults()
	for name, b := range w.Benchmarks {
		ind := model.Industry(name)
		if !ind.Known() {
			return nil, fmt.Errorf("unknown industry %q in %s", name, path)
		}
		entries[ind] = b
	}
	return New(entries)
}
