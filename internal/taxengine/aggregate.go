package taxengine

import (
	"context"
	"fmt"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type records struct {
	revenues []model.Revenue
	expenses []model.Expense
	payroll  []model.Payroll
}

// Totals are the aggregated sums the deriver works from
type Totals struct {
	Revenue            decimal.Decimal
	Expenses           decimal.Decimal
	DeductibleExpenses decimal.Decimal // expenses flagged vat_deductible
	Payroll            decimal.Decimal // gross salaries
}

// loadRecords fetches the three record sets concurrently. The first failure
// cancels the others and is returned as is.
func (e *Engine) loadRecords(ctx context.Context, businessID uuid.UUID, p Period) (records, error) {
	var recs records
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := e.store.ListRevenues(gctx, businessID, p)
		if err != nil {
			return fmt.Errorf("list revenues: %w", err)
		}
		recs.revenues = rows
		return nil
	})
	g.Go(func() error {
		rows, err := e.store.ListExpenses(gctx, businessID, p)
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		recs.expenses = rows
		return nil
	})
	g.Go(func() error {
		from, to := p.Years()
		rows, err := e.store.ListPayroll(gctx, businessID, from, to)
		if err != nil {
			return fmt.Errorf("list payroll: %w", err)
		}
		recs.payroll = payrollInPeriod(rows, p)
		return nil
	})

	if err := g.Wait(); err != nil {
		return records{}, err
	}
	return recs, nil
}

// payrollInPeriod keeps entries whose month starts inside the window,
// preserving store order.
func payrollInPeriod(rows []model.Payroll, p Period) []model.Payroll {
	out := make([]model.Payroll, 0, len(rows))
	for _, row := range rows {
		if p.ContainsMonth(row.PeriodYear, row.PeriodMonth) {
			out = append(out, row)
		}
	}
	return out
}

func (r records) totals() Totals {
	t := Totals{
		Revenue:            decimal.Zero,
		Expenses:           decimal.Zero,
		DeductibleExpenses: decimal.Zero,
		Payroll:            decimal.Zero,
	}
	for _, rev := range r.revenues {
		t.Revenue = t.Revenue.Add(rev.Amount)
	}
	for _, exp := range r.expenses {
		t.Expenses = t.Expenses.Add(exp.Amount)
		if exp.VATDeductible {
			t.DeductibleExpenses = t.DeductibleExpenses.Add(exp.Amount)
		}
	}
	for _, p := range r.payroll {
		t.Payroll = t.Payroll.Add(p.GrossSalary)
	}
	return t
}
