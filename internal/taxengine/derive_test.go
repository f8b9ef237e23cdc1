package taxengine

import (
	"math/rand/v2"
	"testing"

	"taxledger/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s = %s, want %s", field, got.String(), want)
}

func rate(rt model.RateType, pct string) model.TaxRate {
	return model.TaxRate{RateType: rt, RateValue: dec(pct)}
}

func TestDerive_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		regime     model.TaxRegime
		vat        bool
		totals     Totals
		rates      []model.TaxRate
		taxable    string
		incomeTax  string
		vatPayable string
		social     string
		total      string
	}{
		{
			name:   "simplified with VAT",
			regime: model.RegimeSimplified,
			vat:    true,
			totals: Totals{Revenue: dec("1000"), Expenses: dec("200"), DeductibleExpenses: dec("200"), Payroll: decimal.Zero},
			rates: []model.TaxRate{
				rate(model.RateTypeIncomeTax, "16"),
				rate(model.RateTypeVAT, "20"),
			},
			taxable: "800", incomeTax: "128", vatPayable: "160", social: "0", total: "288",
		},
		{
			name:   "general without VAT",
			regime: model.RegimeGeneral,
			vat:    false,
			totals: Totals{Revenue: dec("5000"), Expenses: dec("1000"), DeductibleExpenses: decimal.Zero, Payroll: dec("2000")},
			rates: []model.TaxRate{
				rate(model.RateTypeIncomeTax, "18"),
				rate(model.RateTypeSocial, "34"),
			},
			taxable: "2000", incomeTax: "360", vatPayable: "0", social: "680", total: "1040",
		},
		{
			name:   "loss floors taxable income and income tax",
			regime: model.RegimeSimplified,
			vat:    false,
			totals: Totals{Revenue: dec("300"), Expenses: dec("900"), DeductibleExpenses: decimal.Zero, Payroll: decimal.Zero},
			rates: []model.TaxRate{
				rate(model.RateTypeIncomeTax, "16"),
			},
			taxable: "0", incomeTax: "0", vatPayable: "0", social: "0", total: "0",
		},
		{
			name:   "negative income tax does not net against VAT",
			regime: model.RegimeSimplified,
			vat:    true,
			totals: Totals{Revenue: dec("1000"), Expenses: dec("1500"), DeductibleExpenses: decimal.Zero, Payroll: decimal.Zero},
			rates: []model.TaxRate{
				rate(model.RateTypeIncomeTax, "16"),
				rate(model.RateTypeVAT, "20"),
			},
			taxable: "0", incomeTax: "0", vatPayable: "200", social: "0", total: "200",
		},
		{
			name:   "deductible input VAT exceeding output VAT floors at zero",
			regime: model.RegimeGeneral,
			vat:    true,
			totals: Totals{Revenue: dec("100"), Expenses: dec("400"), DeductibleExpenses: dec("400"), Payroll: decimal.Zero},
			rates: []model.TaxRate{
				rate(model.RateTypeVAT, "20"),
			},
			taxable: "0", incomeTax: "0", vatPayable: "0", social: "0", total: "0",
		},
		{
			name:   "fractional amounts stay exact",
			regime: model.RegimeSimplified,
			vat:    false,
			totals: Totals{Revenue: dec("0.1").Add(dec("0.2")), Expenses: decimal.Zero, DeductibleExpenses: decimal.Zero, Payroll: decimal.Zero},
			rates: []model.TaxRate{
				rate(model.RateTypeIncomeTax, "10"),
			},
			taxable: "0.3", incomeTax: "0.03", vatPayable: "0", social: "0", total: "0.03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := RulesFor(tt.regime)
			require.NoError(t, err)

			l := Derive(rules, tt.vat, tt.totals, NewRateTable(tt.rates))

			assertDecimal(t, tt.taxable, l.TaxableIncome, "taxable_income")
			assertDecimal(t, tt.incomeTax, l.IncomeTax, "income_tax")
			assertDecimal(t, tt.vatPayable, l.VATPayable, "vat_payable")
			assertDecimal(t, tt.social, l.SocialContributions, "social_contributions")
			assertDecimal(t, tt.total, l.TotalTaxLiability, "total_tax_liability")
		})
	}
}

func TestDerive_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	amount := func() decimal.Decimal {
		return decimal.New(rng.Int64N(10_000_000), -2)
	}
	pct := func() string {
		return decimal.New(rng.Int64N(5000), -2).String()
	}

	for i := 0; i < 500; i++ {
		expenses := amount()
		totals := Totals{
			Revenue:            amount(),
			Expenses:           expenses,
			DeductibleExpenses: expenses.Mul(decimal.NewFromFloat(rng.Float64())).Round(2),
			Payroll:            amount(),
		}
		rates := NewRateTable([]model.TaxRate{
			rate(model.RateTypeIncomeTax, pct()),
			rate(model.RateTypeVAT, pct()),
			rate(model.RateTypeSocial, pct()),
		})
		regime := model.RegimeSimplified
		if i%2 == 0 {
			regime = model.RegimeGeneral
		}
		vat := i%3 != 0

		rules, err := RulesFor(regime)
		require.NoError(t, err)
		l := Derive(rules, vat, totals, rates)

		for name, v := range map[string]decimal.Decimal{
			"taxable_income":       l.TaxableIncome,
			"income_tax":           l.IncomeTax,
			"vat_payable":          l.VATPayable,
			"social_contributions": l.SocialContributions,
			"total_tax_liability":  l.TotalTaxLiability,
		} {
			require.Falsef(t, v.IsNegative(), "%s negative: %s", name, v)
		}

		sum := l.IncomeTax.Add(l.VATPayable).Add(l.SocialContributions)
		require.True(t, sum.Equal(l.TotalTaxLiability), "total %s != components %s", l.TotalTaxLiability, sum)

		if regime == model.RegimeSimplified {
			require.True(t, l.SocialContributions.IsZero())
		}
		if !vat {
			require.True(t, l.VATPayable.IsZero())
		}
	}
}

func TestDerive_MissingRatesContributeNothing(t *testing.T) {
	totals := Totals{Revenue: dec("10000"), Expenses: dec("100"), DeductibleExpenses: dec("100"), Payroll: dec("3000")}

	rules, err := RulesFor(model.RegimeGeneral)
	require.NoError(t, err)
	l := Derive(rules, true, totals, NewRateTable(nil))

	assertDecimal(t, "6900", l.TaxableIncome, "taxable_income")
	assertDecimal(t, "0", l.IncomeTax, "income_tax")
	assertDecimal(t, "0", l.VATPayable, "vat_payable")
	assertDecimal(t, "0", l.SocialContributions, "social_contributions")
	assertDecimal(t, "0", l.TotalTaxLiability, "total_tax_liability")
}

func TestRegimeRules_SocialContributions(t *testing.T) {
	rates := NewRateTable([]model.TaxRate{rate(model.RateTypeSocial, "34")})
	payroll := dec("1000000")

	simplified, err := RulesFor(model.RegimeSimplified)
	require.NoError(t, err)
	general, err := RulesFor(model.RegimeGeneral)
	require.NoError(t, err)

	assert.Equal(t, model.RegimeSimplified, simplified.Regime())
	assert.Equal(t, model.RegimeGeneral, general.Regime())
	assertDecimal(t, "0", simplified.SocialContributions(payroll, rates), "simplified social")
	assertDecimal(t, "340000", general.SocialContributions(payroll, rates), "general social")
}

func TestRulesFor_UnknownRegime(t *testing.T) {
	_, err := RulesFor("patent")
	assert.ErrorIs(t, err, ErrUnknownRegime)
}
