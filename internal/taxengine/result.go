package taxengine

import (
	"time"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the full liability breakdown for one business and period.
// All monetary fields except the raw totals are clamped at zero.
type Result struct {
	BusinessID          uuid.UUID       `json:"business_id"`
	Period              Period          `json:"-"`
	Regime              model.TaxRegime `json:"regime"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	TotalPayroll        decimal.Decimal `json:"total_payroll"`
	TaxableIncome       decimal.Decimal `json:"taxable_income"`
	IncomeTax           decimal.Decimal `json:"income_tax"`
	VATPayable          decimal.Decimal `json:"vat_payable"`
	SocialContributions decimal.Decimal `json:"social_contributions"`
	TotalTaxLiability   decimal.Decimal `json:"total_tax_liability"`
	Breakdown           Breakdown       `json:"breakdown"`
	Warnings            []string        `json:"warnings,omitempty"`
}

type Breakdown struct {
	Revenues []RevenueLine `json:"revenue_details"`
	Expenses []ExpenseLine `json:"expense_details"`
	Payroll  []PayrollLine `json:"payroll_details"`
}

type RevenueLine struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"` // period_start of the revenue record
	Description string          `json:"description"`
}

type ExpenseLine struct {
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
}

// PayrollLine.Tax is the income tax stored on the payroll entry, not a
// recomputed figure.
type PayrollLine struct {
	Salary   decimal.Decimal `json:"salary"`
	Employee string          `json:"employee"`
	Tax      decimal.Decimal `json:"tax"`
}

const defaultRevenueDescription = "Revenue"

func newBreakdown(recs records) Breakdown {
	b := Breakdown{
		Revenues: make([]RevenueLine, 0, len(recs.revenues)),
		Expenses: make([]ExpenseLine, 0, len(recs.expenses)),
		Payroll:  make([]PayrollLine, 0, len(recs.payroll)),
	}
	for _, r := range recs.revenues {
		desc := r.Description
		if desc == "" {
			desc = defaultRevenueDescription
		}
		b.Revenues = append(b.Revenues, RevenueLine{Amount: r.Amount, Date: r.PeriodStart, Description: desc})
	}
	for _, e := range recs.expenses {
		b.Expenses = append(b.Expenses, ExpenseLine{Amount: e.Amount, Date: e.ExpenseDate, Category: e.Category})
	}
	for _, p := range recs.payroll {
		b.Payroll = append(b.Payroll, PayrollLine{Salary: p.GrossSalary, Employee: p.EmployeeName, Tax: p.IncomeTax})
	}
	return b
}

// storedScale matches the decimal(18,4) columns of tax_calculations.
const storedScale = 4

// Record converts the result into a storable calculation row. Each amount is
// rounded to the column scale first and the total is rebuilt from the rounded
// components, so a stored row always sums to its stored total.
func (r *Result) Record(status model.CalculationStatus) *model.TaxCalculation {
	incomeTax := r.IncomeTax.Round(storedScale)
	vat := r.VATPayable.Round(storedScale)
	social := r.SocialContributions.Round(storedScale)

	return &model.TaxCalculation{
		BusinessID:          r.BusinessID,
		PeriodStart:         r.Period.Start,
		PeriodEnd:           r.Period.End,
		TotalRevenue:        r.TotalRevenue.Round(storedScale),
		TotalExpenses:       r.TotalExpenses.Round(storedScale),
		TaxableIncome:       r.TaxableIncome.Round(storedScale),
		IncomeTax:           incomeTax,
		VATPayable:          vat,
		SocialContributions: social,
		TotalTaxLiability:   clamp(incomeTax.Add(vat).Add(social)),
		Status:              status,
	}
}
