package analysis

import (
	"math"
	"testing"

	"financial-health/internal/benchmark"
	"financial-health/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesBenchmark() model.IndustryBenchmark {
	_, b := benchmark.Default().Lookup("services")
	return b
}

func TestComputeRatios(t *testing.T) {
	m := model.Metrics{
		Revenue:            200000,
		NetProfit:          40000,
		TotalAssets:        400000,
		Equity:             200000,
		TotalLiabilities:   200000,
		CurrentAssets:      160000,
		CurrentLiabilities: 60000,
		COGS:               90000,
		Inventory:          15000,
		AccountsReceivable: 25000,
	}
	r := ComputeRatios(m)

	assert.InDelta(t, 0.2, r.ProfitMargin, 1e-12)
	assert.InDelta(t, 0.1, r.ROA, 1e-12)
	assert.InDelta(t, 0.2, r.ROE, 1e-12)
	assert.InDelta(t, 160000.0/60000.0, r.CurrentRatio, 1e-12)
	assert.InDelta(t, 1.0, r.DebtToEquity, 1e-12)
	assert.InDelta(t, 0.5, r.DebtRatio, 1e-12)
	assert.InDelta(t, 6.0, r.InventoryTurnover, 1e-12)
	assert.InDelta(t, 8.0, r.ReceivablesTurnover, 1e-12)
}

func TestComputeRatiosGuardsDenominators(t *testing.T) {
	tests := []struct {
		name string
		m    model.Metrics
	}{
		{"all zero", model.Metrics{}},
		{"numerators only", model.Metrics{NetProfit: 10, TotalLiabilities: 5, COGS: 3, CurrentAssets: 2}},
		{"negative denominators", model.Metrics{
			NetProfit: 10, Revenue: -1, TotalAssets: -1, Equity: -5,
			CurrentAssets: 3, CurrentLiabilities: -2, COGS: 1, Inventory: -1, AccountsReceivable: -4,
		}},
		{"nan denominators", model.Metrics{NetProfit: 10, Revenue: math.NaN(), Equity: math.NaN()}},
		{"overflowing quotients", model.Metrics{
			NetProfit: 1e308, Revenue: 1e-10, TotalAssets: 1e-10, Equity: 1e-10,
			CurrentAssets: math.MaxFloat64, CurrentLiabilities: 1e-300,
			COGS: 1e308, Inventory: 1e-10, AccountsReceivable: 1e-320, TotalLiabilities: 1e308,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, nr := range ComputeRatios(tt.m).Named() {
				assert.Equal(t, 0.0, nr.Value, nr.Name)
			}
		})
	}
}

func TestProfitMarginZeroWhenRevenueZero(t *testing.T) {
	r := ComputeRatios(model.Metrics{NetProfit: 5000})
	assert.Equal(t, 0.0, r.ProfitMargin)
	assert.False(t, math.IsNaN(r.ProfitMargin))
	assert.False(t, math.IsInf(r.ProfitMargin, 0))
}

func TestRatingForScoreBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.Rating
	}{
		{100, model.RatingA},
		{85, model.RatingA},
		{84, model.RatingB},
		{70, model.RatingB},
		{69, model.RatingC},
		{55, model.RatingC},
		{54, model.RatingD},
		{0, model.RatingD},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingForScore(tt.score), "score %d", tt.score)
	}
}

func TestAssessCreditworthinessTiers(t *testing.T) {
	b := servicesBenchmark() // pm 0.20, d/e 0.8, cr 2.0

	tests := []struct {
		name   string
		ratios model.RatioSet
		score  int
		rating model.Rating
	}{
		{
			name:   "all top tiers",
			ratios: model.RatioSet{ProfitMargin: 0.25, DebtToEquity: 0.5, CurrentRatio: 2.5, ROE: 0.2},
			score:  100, rating: model.RatingA,
		},
		{
			name:   "second tiers",
			ratios: model.RatioSet{ProfitMargin: 0.15, DebtToEquity: 1.0, CurrentRatio: 1.7, ROE: 0.12},
			score:  60, rating: model.RatingC,
		},
		{
			name:   "third tiers",
			ratios: model.RatioSet{ProfitMargin: 0.01, DebtToEquity: 1.2, CurrentRatio: 1.1, ROE: 0.06},
			score:  20, rating: model.RatingD,
		},
		{
			name:   "nothing",
			ratios: model.RatioSet{ProfitMargin: -0.1, DebtToEquity: 2.0, CurrentRatio: 0.5, ROE: 0.01},
			score:  0, rating: model.RatingD,
		},
		{
			name:   "zero ratios still earn leverage and margin floor points",
			ratios: model.RatioSet{},
			score:  30, rating: model.RatingD,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AssessCreditworthiness(tt.ratios, b)
			assert.Equal(t, tt.score, c.Score)
			assert.Equal(t, tt.rating, c.Rating)
			require.Len(t, c.Factors, 4)
			sum := 0
			for _, f := range c.Factors {
				sum += f.Points
			}
			assert.Equal(t, c.Score, sum)
		})
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	values := []float64{-10, -1, 0, 0.05, 0.1, 0.5, 1, 1.5, 2, 10, math.Inf(1), math.Inf(-1)}
	b := servicesBenchmark()
	for _, pm := range values {
		for _, de := range values {
			for _, cr := range values {
				c := AssessCreditworthiness(model.RatioSet{ProfitMargin: pm, DebtToEquity: de, CurrentRatio: cr, ROE: pm}, b)
				assert.GreaterOrEqual(t, c.Score, 0)
				assert.LessOrEqual(t, c.Score, 100)
			}
		}
	}
}

func TestIdentifyRisksLiquidityHigh(t *testing.T) {
	p := IdentifyRisks(model.RatioSet{CurrentRatio: 0.9, ProfitMargin: 0.3, DebtToEquity: 0.1}, servicesBenchmark())
	assert.Equal(t, model.SeverityHigh, p.Level)
	require.Len(t, p.Findings, 1)
	assert.Equal(t, RiskLiquidity, p.Findings[0].Type)
	assert.Equal(t, model.SeverityHigh, p.Findings[0].Severity)
}

func TestIdentifyRisksCascade(t *testing.T) {
	b := servicesBenchmark()

	tests := []struct {
		name     string
		ratios   model.RatioSet
		level    model.Severity
		findings []model.RiskFinding
	}{
		{
			name:     "healthy",
			ratios:   model.RatioSet{CurrentRatio: 2.0, DebtToEquity: 0.5, ProfitMargin: 0.25},
			level:    model.SeverityLow,
			findings: []model.RiskFinding{},
		},
		{
			name:   "medium liquidity only",
			ratios: model.RatioSet{CurrentRatio: 1.2, DebtToEquity: 0.5, ProfitMargin: 0.25},
			level:  model.SeverityMedium,
			findings: []model.RiskFinding{
				{Type: RiskLiquidity, Severity: model.SeverityMedium, Description: "Current ratio below industry benchmark"},
			},
		},
		{
			name:   "medium liquidity then high solvency",
			ratios: model.RatioSet{CurrentRatio: 1.2, DebtToEquity: 1.3, ProfitMargin: 0.25},
			level:  model.SeverityHigh,
			findings: []model.RiskFinding{
				{Type: RiskLiquidity, Severity: model.SeverityMedium, Description: "Current ratio below industry benchmark"},
				{Type: RiskSolvency, Severity: model.SeverityHigh, Description: "Excessive leverage"},
			},
		},
		{
			name:   "high solvency does not downgrade on medium profitability",
			ratios: model.RatioSet{CurrentRatio: 2.0, DebtToEquity: 1.3, ProfitMargin: 0.05},
			level:  model.SeverityHigh,
			findings: []model.RiskFinding{
				{Type: RiskSolvency, Severity: model.SeverityHigh, Description: "Excessive leverage"},
				{Type: RiskProfitability, Severity: model.SeverityMedium, Description: "Profit margin below half of industry benchmark"},
			},
		},
		{
			name:   "all three",
			ratios: model.RatioSet{CurrentRatio: 0.5, DebtToEquity: 3, ProfitMargin: -0.1},
			level:  model.SeverityHigh,
			findings: []model.RiskFinding{
				{Type: RiskLiquidity, Severity: model.SeverityHigh, Description: "Current ratio below 1.0"},
				{Type: RiskSolvency, Severity: model.SeverityHigh, Description: "Excessive leverage"},
				{Type: RiskProfitability, Severity: model.SeverityHigh, Description: "Negative margins"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := IdentifyRisks(tt.ratios, b)
			assert.Equal(t, tt.level, p.Level)
			assert.Equal(t, tt.findings, p.Findings)
		})
	}
}

func TestSuggestOptimizations(t *testing.T) {
	_, retail := benchmark.Default().Lookup("retail") // inventory turnover 8

	m := model.Metrics{Revenue: 100000, Expenses: 90000, Inventory: 20000, AccountsReceivable: 20000}
	r := model.RatioSet{InventoryTurnover: 3, ReceivablesTurnover: 5}

	got := SuggestOptimizations(r, m, retail)
	require.Len(t, got, 3)
	assert.Equal(t, "Inventory", got[0].Category)
	assert.Equal(t, "Receivables", got[1].Category)
	assert.Equal(t, "Expenses", got[2].Category)
	for _, s := range got {
		assert.NotEmpty(t, s.Suggestion)
		assert.NotEmpty(t, s.SavingsPotential)
		assert.NotEmpty(t, s.Action)
	}
}

func TestSuggestOptimizationsSkipsAbsentInputs(t *testing.T) {
	b := servicesBenchmark()

	// No inventory, no receivables, no revenue: nothing can fire.
	got := SuggestOptimizations(model.RatioSet{}, model.Metrics{Expenses: 5000}, b)
	assert.Empty(t, got)

	// Services has an inventory turnover benchmark of 0, so the inventory rule never fires.
	got = SuggestOptimizations(model.RatioSet{InventoryTurnover: 0}, model.Metrics{Inventory: 100}, b)
	assert.Empty(t, got)

	// Exactly 85% is not above the ceiling.
	got = SuggestOptimizations(model.RatioSet{}, model.Metrics{Revenue: 100, Expenses: 85}, b)
	assert.Empty(t, got)
}

func TestReceivablesTurnoverOverflowIsZero(t *testing.T) {
	r := ComputeRatios(model.Metrics{Revenue: 1e308, AccountsReceivable: 1e-10})
	assert.Equal(t, 0.0, r.ReceivablesTurnover)
}
