package pipeline

import (
	"context"
	"testing"

	"financial-health/internal/assessment"
	"financial-health/internal/config"
	"financial-health/internal/data"
	"financial-health/internal/model"
	"financial-health/internal/normalize"
	"financial-health/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline() *Pipeline {
	return New(data.NewLoader(0, nil), normalize.New(), policy.Default(), assessment.New(nil))
}

func TestAssessFileFromCSV(t *testing.T) {
	csv := []byte("Revenue,Expenses,Total Liabilities,Equity,Inventory,Accounts Receivable\n" +
		"100000,60000,80000,120000,6000,8000\n")

	a, out, err := newPipeline().AssessFile(context.Background(), "books.csv", csv, "retail")
	require.NoError(t, err)

	assert.Equal(t, normalize.OutcomeMetrics, out.Kind)
	assert.Equal(t, 40000.0, out.Metrics.NetProfit)
	assert.Equal(t, 200000.0, out.Metrics.TotalAssets)
	assert.Equal(t, model.IndustryRetail, a.Industry)
	assert.InDelta(t, 0.4, a.Ratios.ProfitMargin, 1e-9)
	// current ratio = 0.4*200000 / (0.3*80000)
	assert.InDelta(t, 80000.0/24000.0, a.Ratios.CurrentRatio, 1e-9)
}

func TestAssessFileUnsupported(t *testing.T) {
	_, _, err := newPipeline().AssessFile(context.Background(), "books.docx", []byte("x"), "retail")
	assert.ErrorIs(t, err, data.ErrUnsupportedFormat)
}

func TestAssessAppliesDerivationBeforeEngine(t *testing.T) {
	p := newPipeline()
	a := p.Assess(model.Metrics{Revenue: 1000, Expenses: 500, NetProfit: 500, Inventory: 100, TotalAssets: 1000, TotalLiabilities: 100, Equity: 900}, "services")
	// cogs = 0.6*500 = 300, inventory turnover = 300/100
	assert.InDelta(t, 3.0, a.Ratios.InventoryTurnover, 1e-9)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Forecast.HorizonMonths = 6
	cfg.Forecast.GrowthRate = 0.1

	p := FromConfig(cfg)
	a := p.Assess(model.Metrics{Revenue: 100}, "retail")
	require.Len(t, a.Forecast.RevenueForecast, 6)
	assert.Equal(t, 110.0, a.Forecast.RevenueForecast[0].Value)
	assert.NotNil(t, p.Loader.Cache)
}
