// Package policy fills in working-capital inputs the uploaded data did not
// carry. It runs at the call site, before the assessment engine; the engine
// itself never invents inputs.
package policy

import (
	"fmt"

	"financial-health/internal/model"
)

// Default fractions used when a field is missing.
const (
	DefaultCurrentAssetsFraction      = 0.4
	DefaultCurrentLiabilitiesFraction = 0.3
	DefaultCOGSFraction               = 0.6
)

// Derivation estimates current assets, current liabilities and cost of goods
// sold from the totals.
type Derivation struct {
	CurrentAssetsFraction      float64 `yaml:"current_assets_fraction" json:"current_assets_fraction"`
	CurrentLiabilitiesFraction float64 `yaml:"current_liabilities_fraction" json:"current_liabilities_fraction"`
	COGSFraction               float64 `yaml:"cogs_fraction" json:"cogs_fraction"`
}

// Default returns the stock fractions.
func Default() Derivation {
	return Derivation{
		CurrentAssetsFraction:      DefaultCurrentAssetsFraction,
		CurrentLiabilitiesFraction: DefaultCurrentLiabilitiesFraction,
		COGSFraction:               DefaultCOGSFraction,
	}
}

// Validate rejects fractions outside [0, 1].
func (d Derivation) Validate() error {
	fractions := []struct {
		name string
		v    float64
	}{
		{"current_assets_fraction", d.CurrentAssetsFraction},
		{"current_liabilities_fraction", d.CurrentLiabilitiesFraction},
		{"cogs_fraction", d.COGSFraction},
	}
	for _, f := range fractions {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", f.name, f.v)
		}
	}
	return nil
}

// Apply returns m with each of current_assets, current_liabilities and cogs
// set from its total when it is 0. Present values are never overwritten.
// The second result lists the fields that were filled in.
func (d Derivation) Apply(m model.Metrics) (model.Metrics, []model.Field) {
	var filled []model.Field
	if m.CurrentAssets == 0 && m.TotalAssets != 0 {
		m.CurrentAssets = d.CurrentAssetsFraction * m.TotalAssets
		filled = append(filled, model.FieldCurrentAssets)
	}
	if m.CurrentLiabilities == 0 && m.TotalLiabilities != 0 {
		m.CurrentLiabilities = d.CurrentLiabilitiesFraction * m.TotalLiabilities
		filled = append(filled, model.FieldCurrentLiabilities)
	}
	if m.COGS == 0 && m.Expenses != 0 {
		m.COGS = d.COGSFraction * m.Expenses
		filled = append(filled, model.FieldCOGS)
	}
	return m, filled
}
