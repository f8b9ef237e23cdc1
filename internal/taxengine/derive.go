package taxengine

import (
	"taxledger/internal/model"

	"github.com/shopspring/decimal"
)

// Liability is the derived, clamped set of tax figures
type Liability struct {
	TaxableIncome       decimal.Decimal
	IncomeTax           decimal.Decimal
	VATPayable          decimal.Decimal
	SocialContributions decimal.Decimal
	TotalTaxLiability   decimal.Decimal
}

// Derive applies the tax formulas to aggregated totals.
//
// Income tax is computed from the unclamped taxable income, so a loss yields
// zero income tax rather than a credit. Each component is floored at zero on
// its own and the total is the sum of the floored components.
func Derive(rules RegimeRules, vatApplicable bool, t Totals, rates RateTable) Liability {
	taxable := t.Revenue.Sub(t.Expenses).Sub(t.Payroll)
	incomeTax := taxable.Mul(rates.RateFor(model.RateTypeIncomeTax))

	vat := decimal.Zero
	if vatApplicable {
		vatRate := rates.RateFor(model.RateTypeVAT)
		vat = t.Revenue.Mul(vatRate).Sub(t.DeductibleExpenses.Mul(vatRate))
	}

	social := rules.SocialContributions(t.Payroll, rates)

	l := Liability{
		TaxableIncome:       clamp(taxable),
		IncomeTax:           clamp(incomeTax),
		VATPayable:          clamp(vat),
		SocialContributions: clamp(social),
	}
	l.TotalTaxLiability = clamp(l.IncomeTax.Add(l.VATPayable).Add(l.SocialContributions))
	return l
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
