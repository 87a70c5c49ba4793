package forecast

import (
	"math"

	"financial-health/internal/model"
)

// DefaultGrowthRate is the fixed monthly growth rate of the baseline projection.
const DefaultGrowthRate = 0.05

// Geometric compounds revenue and net profit at a fixed rate per period:
//
//	value[i] = round(base * (1+rate)^i, 2),  i = 1..horizon
//
// It is a deliberately simple baseline, not a statistical estimate.
type Geometric struct {
	Rate float64
}

// NewGeometric returns a Geometric forecaster; a zero rate means DefaultGrowthRate.
func NewGeometric(rate float64) *Geometric {
	if rate == 0 {
		rate = DefaultGrowthRate
	}
	return &Geometric{Rate: rate}
}

func (g *Geometric) Name() string { return "geometric" }

func (g *Geometric) Forecast(m model.Metrics, horizon int) model.Forecast {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	out := model.Forecast{
		Model:           g.Name(),
		GrowthRate:      g.Rate,
		HorizonMonths:   horizon,
		RevenueForecast: make([]model.ForecastPoint, 0, horizon),
		ProfitForecast:  make([]model.ForecastPoint, 0, horizon),
	}
	for i := 1; i <= horizon; i++ {
		factor := math.Pow(1+g.Rate, float64(i))
		out.RevenueForecast = append(out.RevenueForecast, model.ForecastPoint{Period: i, Value: project(m.Revenue, factor)})
		out.ProfitForecast = append(out.ProfitForecast, model.ForecastPoint{Period: i, Value: project(m.NetProfit, factor)})
	}
	return out
}

// project compounds base by factor. A product that overflows float64 is
// reported as 0, like a guarded ratio.
func project(base, factor float64) float64 {
	v := base * factor
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return round2(v)
}
