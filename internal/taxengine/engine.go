// Package taxengine derives income tax, VAT and social contributions for a
// business over a reporting period from its revenue, expense and payroll
// records.
package taxengine

import (
	"context"
	"fmt"
	"time"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Option func(*Engine)

// WithLogger sets the engine logger. Rate load failures are logged at warn.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRateSelector replaces the default OpenEndedRates policy
func WithRateSelector(s RateSelector) Option {
	return func(e *Engine) {
		if s != nil {
			e.selectRates = s
		}
	}
}

// Engine holds no state between calculations: rates are loaded per call.
type Engine struct {
	store       RecordStore
	logger      *zap.Logger
	selectRates RateSelector
}

func New(store RecordStore, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		logger:      zap.NewNop(),
		selectRates: OpenEndedRates,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate computes the liability of a business for p. It fails with
// KindNotFound when the business does not exist and with KindStoreFailure when
// any record fetch fails. A failed rate fetch does not fail the call; the
// result then carries a warning and zero rates.
func (e *Engine) Calculate(ctx context.Context, businessID uuid.UUID, p Period) (*Result, error) {
	const op = "calculate"
	started := time.Now()

	business, err := e.store.FindBusiness(ctx, businessID)
	if err != nil {
		return nil, newError(KindStoreFailure, op, fmt.Errorf("find business %s: %w", businessID, err))
	}
	if business == nil {
		return nil, newError(KindNotFound, op, fmt.Errorf("%w: %s", ErrBusinessNotFound, businessID))
	}

	rules, err := RulesFor(business.TaxRegime)
	if err != nil {
		return nil, newError(KindInvalid, op, err)
	}

	rates, warnings := e.loadRates(ctx, business, p)

	recs, err := e.loadRecords(ctx, businessID, p)
	if err != nil {
		return nil, newError(KindStoreFailure, op, err)
	}

	totals := recs.totals()
	liability := Derive(rules, business.VATApplicable, totals, rates)

	result := &Result{
		BusinessID:          businessID,
		Period:              p,
		Regime:              business.TaxRegime,
		TotalRevenue:        totals.Revenue,
		TotalExpenses:       totals.Expenses,
		TotalPayroll:        totals.Payroll,
		TaxableIncome:       liability.TaxableIncome,
		IncomeTax:           liability.IncomeTax,
		VATPayable:          liability.VATPayable,
		SocialContributions: liability.SocialContributions,
		TotalTaxLiability:   liability.TotalTaxLiability,
		Breakdown:           newBreakdown(recs),
		Warnings:            warnings,
	}

	e.logger.Debug("tax calculation complete",
		zap.String("business_id", businessID.String()),
		zap.String("period", p.String()),
		zap.String("regime", string(business.TaxRegime)),
		zap.String("total_tax_liability", result.TotalTaxLiability.String()),
		zap.Int("revenues", len(recs.revenues)),
		zap.Int("expenses", len(recs.expenses)),
		zap.Int("payroll", len(recs.payroll)),
		zap.Duration("duration", time.Since(started)),
	)

	return result, nil
}

// loadRates never fails. On a store error it logs a warning and returns an
// empty table, which zeroes every tax component.
func (e *Engine) loadRates(ctx context.Context, business *model.Business, p Period) (RateTable, []string) {
	rows, err := e.store.ListActiveTaxRates(ctx, business.TaxRegime)
	if err != nil {
		rateErr := newError(KindRateLoadFailure, "load_rates", err)
		e.logger.Warn("tax rates unavailable, calculating with zero rates",
			zap.String("business_id", business.ID.String()),
			zap.String("regime", string(business.TaxRegime)),
			zap.Error(rateErr),
		)
		return NewRateTable(nil), []string{rateErr.Error()}
	}

	table := NewRateTable(e.selectRates(rows, p))

	var warnings []string
	for _, rt := range requiredRates(business) {
		if !table.Has(rt) {
			warnings = append(warnings, fmt.Sprintf("no active %s rate for %s regime, component is zero", rt, business.TaxRegime))
		}
	}
	if len(warnings) > 0 {
		e.logger.Info("tax rates missing",
			zap.String("business_id", business.ID.String()),
			zap.Strings("warnings", warnings),
		)
	}
	return table, warnings
}

// requiredRates lists the rate types that feed a non-trivial formula for b
func requiredRates(b *model.Business) []model.RateType {
	types := []model.RateType{model.RateTypeIncomeTax}
	if b.VATApplicable {
		types = append(types, model.RateTypeVAT)
	}
	if b.TaxRegime == model.RegimeGeneral {
		types = append(types, model.RateTypeSocial)
	}
	return types
}

// Save stores result as a calculation row with the given status (draft when
// empty). Storage errors are returned as KindPersistFailure and not retried.
func (e *Engine) Save(ctx context.Context, result *Result, status model.CalculationStatus) (*model.TaxCalculation, error) {
	const op = "save"
	if status == "" {
		status = model.CalculationDraft
	}
	if status != model.CalculationDraft && status != model.CalculationFinal {
		return nil, newError(KindInvalid, op, fmt.Errorf("unknown calculation status %q", status))
	}
	if result == nil {
		return nil, newError(KindInvalid, op, fmt.Errorf("nil result"))
	}

	calc := result.Record(status)
	if err := e.store.InsertTaxCalculation(ctx, calc); err != nil {
		return nil, newError(KindPersistFailure, op, err)
	}

	e.logger.Info("tax calculation saved",
		zap.String("calculation_id", calc.ID.String()),
		zap.String("business_id", calc.BusinessID.String()),
		zap.String("status", string(calc.Status)),
	)
	return calc, nil
}
