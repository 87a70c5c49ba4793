// Package forecast projects revenue and profit forward.
package forecast

import (
	"financial-health/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultHorizon is the number of monthly periods projected when none is given.
const DefaultHorizon = 12

// Forecaster projects metrics over a number of future periods.
// Implementations must return exactly horizon points per series, periods 1..horizon.
type Forecaster interface {
	Name() string
	Forecast(m model.Metrics, horizon int) model.Forecast
}

// round2 rounds half away from zero to two decimals. Ties are judged on the
// shortest decimal form of v, so 2.675 rounds to 2.68 even though its binary
// value is slightly below the tie. v must be finite.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
