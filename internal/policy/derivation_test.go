package policy

import (
	"testing"

	"financial-health/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestApplyDerivesMissingFields(t *testing.T) {
	m, filled := Default().Apply(model.Metrics{TotalAssets: 1000, TotalLiabilities: 500, Expenses: 200})

	assert.InDelta(t, 400.0, m.CurrentAssets, 1e-9)
	assert.InDelta(t, 150.0, m.CurrentLiabilities, 1e-9)
	assert.InDelta(t, 120.0, m.COGS, 1e-9)
	assert.Equal(t, []model.Field{model.FieldCurrentAssets, model.FieldCurrentLiabilities, model.FieldCOGS}, filled)
}

func TestApplyKeepsPresentValues(t *testing.T) {
	in := model.Metrics{TotalAssets: 1000, CurrentAssets: 10, TotalLiabilities: 500, CurrentLiabilities: 20, Expenses: 200, COGS: 30}
	m, filled := Default().Apply(in)
	assert.Equal(t, in, m)
	assert.Empty(t, filled)
}

func TestApplyLeavesZeroTotalsAlone(t *testing.T) {
	m, filled := Default().Apply(model.Metrics{})
	assert.Equal(t, model.Metrics{}, m)
	assert.Empty(t, filled)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	d := Default()
	d.COGSFraction = 1.5
	assert.Error(t, d.Validate())
}
