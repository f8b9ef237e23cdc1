package taxengine

import (
	"taxledger/internal/model"

	"github.com/shopspring/decimal"
)

// RateSelector narrows the store's active rates to the ones a calculation for
// p should use.
type RateSelector func(rates []model.TaxRate, p Period) []model.TaxRate

// OpenEndedRates uses every rate without an effective_to, whatever its
// effective_from. A future-dated open-ended rate is therefore already applied.
func OpenEndedRates(rates []model.TaxRate, _ Period) []model.TaxRate {
	return rates
}

// EffectiveByPeriodEnd also drops rates that only start after the period.
func EffectiveByPeriodEnd(rates []model.TaxRate, p Period) []model.TaxRate {
	out := make([]model.TaxRate, 0, len(rates))
	for _, r := range rates {
		if !r.EffectiveFrom.After(p.End) {
			out = append(out, r)
		}
	}
	return out
}

// RateTable is the rate set one calculation runs with
type RateTable struct {
	rates []model.TaxRate
}

func NewRateTable(rates []model.TaxRate) RateTable {
	return RateTable{rates: rates}
}

// RateFor returns the rate as a fraction, or zero when the type has no rate.
// A missing rate is not an error: it zeroes that tax component.
func (t RateTable) RateFor(rateType model.RateType) decimal.Decimal {
	for _, r := range t.rates {
		if r.RateType == rateType {
			return r.Fraction()
		}
	}
	return decimal.Zero
}

// Has reports whether a rate of the given type is present
func (t RateTable) Has(rateType model.RateType) bool {
	for _, r := range t.rates {
		if r.RateType == rateType {
			return true
		}
	}
	return false
}

func (t RateTable) Len() int {
	return len(t.rates)
}
