// Package assessment composes the analysis components into one Assessment.
package assessment

import (
	"time"

	"financial-health/internal/analysis"
	"financial-health/internal/benchmark"
	"financial-health/internal/forecast"
	"financial-health/internal/model"
)

// Engine is stateless between calls and safe for concurrent use.
type Engine struct {
	table    *benchmark.Table
	forecast forecast.Forecaster
	horizon  int
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithForecaster replaces the default geometric forecaster.
func WithForecaster(f forecast.Forecaster) Option {
	return func(e *Engine) { e.forecast = f }
}

// WithHorizon sets the number of forecast periods.
func WithHorizon(n int) Option {
	return func(e *Engine) { e.horizon = n }
}

// New returns an Engine over table. A nil table means the built-in benchmarks.
func New(table *benchmark.Table, opts ...Option) *Engine {
	if table == nil {
		table = benchmark.Default()
	}
	e := &Engine{
		table:    table,
		forecast: forecast.NewGeometric(forecast.DefaultGrowthRate),
		horizon:  forecast.DefaultHorizon,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Benchmarks exposes the table the engine scores against.
func (e *Engine) Benchmarks() *benchmark.Table { return e.table }

// Generate assesses m against the benchmark for category. Unknown categories
// resolve to services. Inputs are used as given: missing working-capital
// fields stay 0 and their ratios guard to 0.
func (e *Engine) Generate(m model.Metrics, category string) model.Assessment {
	industry, bm := e.table.Lookup(category)

	ratios := analysis.ComputeRatios(m)
	credit := analysis.AssessCreditworthiness(ratios, bm)
	risks := analysis.IdentifyRisks(ratios, bm)

	return model.Assessment{
		Industry:     industry,
		Score:        credit.Score,
		Rating:       credit.Rating,
		RiskLevel:    risks.Level,
		Ratios:       ratios,
		ScoreFactors: credit.Factors,
		Risks:        risks.Findings,
		Suggestions:  analysis.SuggestOptimizations(ratios, m, bm),
		Forecast:     e.forecast.Forecast(m, e.horizon),
		Benchmarks:   bm,
		GeneratedAt:  e.now().UTC(),
	}
}
