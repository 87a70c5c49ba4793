package model

import "strings"

// Industry is the closed set of business categories benchmarks are defined for.
type Industry string

const (
	IndustryManufacturing Industry = "manufacturing"
	IndustryRetail        Industry = "retail"
	IndustryServices      Industry = "services"
	IndustryAgriculture   Industry = "agriculture"
	IndustryLogistics     Industry = "logistics"
	IndustryEcommerce     Industry = "ecommerce"

	// DefaultIndustry is used for any category outside the closed set.
	DefaultIndustry = IndustryServices
)

// Industries lists the known categories in display order.
var Industries = []Industry{
	IndustryManufacturing,
	IndustryRetail,
	IndustryServices,
	IndustryAgriculture,
	IndustryLogistics,
	IndustryEcommerce,
}

// ParseIndustry resolves a free-text category. Matching is case-insensitive;
// anything unknown (including "", "other", "aerospace") resolves to DefaultIndustry.
func ParseIndustry(s string) Industry {
	v := Industry(strings.ToLower(strings.TrimSpace(s)))
	if v.Known() {
		return v
	}
	return DefaultIndustry
}

// Known reports whether i is one of the closed set.
func (i Industry) Known() bool {
	for _, k := range Industries {
		if i == k {
			return true
		}
	}
	return false
}

// IndustryBenchmark holds the reference thresholds for one industry.
type IndustryBenchmark struct {
	ProfitMargin      float64 `json:"profit_margin" yaml:"profit_margin"`
	DebtToEquity      float64 `json:"debt_to_equity" yaml:"debt_to_equity"`
	CurrentRatio      float64 `json:"current_ratio" yaml:"current_ratio"`
	InventoryTurnover float64 `json:"inventory_turnover" yaml:"inventory_turnover"`
}
