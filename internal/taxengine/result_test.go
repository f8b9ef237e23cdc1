package taxengine

import (
	"testing"
	"time"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResult_RecordTotalMatchesStoredComponents(t *testing.T) {
	biz := uuid.New()
	r := &Result{
		BusinessID: biz,
		Period: Period{
			Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		TotalRevenue:        dec("1000.123456"),
		TotalExpenses:       dec("0.00004"),
		TaxableIncome:       dec("1000.12341"),
		IncomeTax:           dec("0.00005"),
		VATPayable:          dec("0.00005"),
		SocialContributions: dec("0.00005"),
		TotalTaxLiability:   dec("0.00015"),
	}

	calc := r.Record(model.CalculationDraft)

	assert.Equal(t, biz, calc.BusinessID)
	assert.Equal(t, model.CalculationDraft, calc.Status)
	assertDecimal(t, "1000.1235", calc.TotalRevenue, "total_revenue")
	assertDecimal(t, "0", calc.TotalExpenses, "total_expenses")
	assertDecimal(t, "1000.1234", calc.TaxableIncome, "taxable_income")
	assertDecimal(t, "0.0001", calc.IncomeTax, "income_tax")
	assertDecimal(t, "0.0001", calc.VATPayable, "vat_payable")
	assertDecimal(t, "0.0001", calc.SocialContributions, "social_contributions")

	// Rounding 0.00015 directly would store 0.0002 next to components summing to 0.0003.
	assertDecimal(t, "0.0003", calc.TotalTaxLiability, "total_tax_liability")
	sum := calc.IncomeTax.Add(calc.VATPayable).Add(calc.SocialContributions)
	assert.True(t, sum.Equal(calc.TotalTaxLiability))
}

func TestResult_RecordKeepsExactAmounts(t *testing.T) {
	r := &Result{
		TotalRevenue:        dec("5000"),
		TotalExpenses:       dec("1000"),
		TaxableIncome:       dec("3000"),
		IncomeTax:           dec("600"),
		VATPayable:          dec("800"),
		SocialContributions: dec("340"),
		TotalTaxLiability:   dec("1740"),
	}

	calc := r.Record(model.CalculationFinal)

	assert.Equal(t, model.CalculationFinal, calc.Status)
	assertDecimal(t, "1740", calc.TotalTaxLiability, "total_tax_liability")
	assertDecimal(t, "5000", calc.TotalRevenue, "total_revenue")
}
