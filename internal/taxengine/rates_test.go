package taxengine

import (
	"testing"
	"time"

	"taxledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_RateFor(t *testing.T) {
	table := NewRateTable([]model.TaxRate{
		rate(model.RateTypeIncomeTax, "16"),
		rate(model.RateTypeVAT, "20"),
		rate(model.RateTypeVAT, "10"),
	})

	assertDecimal(t, "0.16", table.RateFor(model.RateTypeIncomeTax), "income_tax")
	assertDecimal(t, "0.2", table.RateFor(model.RateTypeVAT), "vat keeps first row")
	assertDecimal(t, "0", table.RateFor(model.RateTypeSocial), "missing social")
	assert.True(t, table.Has(model.RateTypeVAT))
	assert.False(t, table.Has(model.RateTypePayroll))
	assert.Equal(t, 3, table.Len())
}

func TestRateSelectors(t *testing.T) {
	p, err := NewPeriod(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	current := rate(model.RateTypeIncomeTax, "16")
	current.EffectiveFrom = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	onBoundary := rate(model.RateTypeVAT, "20")
	onBoundary.EffectiveFrom = p.End
	future := rate(model.RateTypeSocial, "35")
	future.EffectiveFrom = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rates := []model.TaxRate{current, onBoundary, future}

	assert.Len(t, OpenEndedRates(rates, p), 3)

	selected := EffectiveByPeriodEnd(rates, p)
	require.Len(t, selected, 2)
	assert.Equal(t, model.RateTypeIncomeTax, selected[0].RateType)
	assert.Equal(t, model.RateTypeVAT, selected[1].RateType)
}
