package repository

import (
	"context"
	"errors"
	"testing"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTaxRateRepository_ActiveAndClose(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaxRateRepository(db)
	ctx := context.Background()

	old := &model.TaxRate{Regime: model.RegimeSimplified, RateType: model.RateTypeIncomeTax, RateValue: dec("16"), EffectiveFrom: date("2023-01-01")}
	vat := &model.TaxRate{Regime: model.RegimeSimplified, RateType: model.RateTypeVAT, RateValue: dec("20"), EffectiveFrom: date("2023-01-01")}
	general := &model.TaxRate{Regime: model.RegimeGeneral, RateType: model.RateTypeIncomeTax, RateValue: dec("18"), EffectiveFrom: date("2023-01-01")}
	for _, r := range []*model.TaxRate{old, vat, general} {
		require.NoError(t, repo.Create(ctx, r))
		require.NotEqual(t, uuid.Nil, r.ID)
	}

	require.NoError(t, repo.Close(ctx, old.ID, date("2023-12-31")))
	assert.ErrorIs(t, repo.Close(ctx, old.ID, date("2024-01-01")), gorm.ErrRecordNotFound)

	active, err := repo.ListActive(ctx, model.RegimeSimplified)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, model.RateTypeVAT, active[0].RateType)
	assert.True(t, active[0].RateValue.Equal(dec("20")))

	_, err = repo.FindActive(ctx, model.RegimeSimplified, model.RateTypeIncomeTax)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := repo.List(ctx, model.RegimeSimplified)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	everything, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everything, 3)
}

func TestRevenueRepository_ListWithin(t *testing.T) {
	db := newTestDB(t)
	repo := NewRevenueRepository(db)
	ctx := context.Background()
	biz := uuid.New()

	rows := []*model.Revenue{
		{BusinessID: biz, Amount: dec("100"), PeriodStart: date("2024-01-01"), PeriodEnd: date("2024-01-31")},
		{BusinessID: biz, Amount: dec("200"), PeriodStart: date("2024-03-01"), PeriodEnd: date("2024-03-31")},
		{BusinessID: biz, Amount: dec("400"), PeriodStart: date("2023-12-15"), PeriodEnd: date("2024-01-15")},
		{BusinessID: biz, Amount: dec("800"), PeriodStart: date("2024-03-15"), PeriodEnd: date("2024-04-15")},
		{BusinessID: uuid.New(), Amount: dec("1600"), PeriodStart: date("2024-01-01"), PeriodEnd: date("2024-01-31")},
	}
	for _, r := range rows {
		require.NoError(t, repo.Create(ctx, r))
	}

	got, err := repo.ListWithin(ctx, biz, date("2024-01-01"), date("2024-03-31"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("100")))
	assert.True(t, got[1].Amount.Equal(dec("200")))
}

func TestExpenseRepository_ListBetweenIsInclusive(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	biz := uuid.New()

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-02-10", "2024-03-31", "2024-04-01"} {
		require.NoError(t, repo.Create(ctx, &model.Expense{BusinessID: biz, Amount: dec("10"), ExpenseDate: date(d), Category: model.ExpenseRent}))
	}

	got, err := repo.ListBetween(ctx, biz, date("2024-01-01"), date("2024-03-31"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].ExpenseDate.Equal(date("2024-01-01")))
	assert.True(t, got[2].ExpenseDate.Equal(date("2024-03-31")))
}

func TestPayrollRepository_ListByYears(t *testing.T) {
	db := newTestDB(t)
	repo := NewPayrollRepository(db)
	ctx := context.Background()
	biz := uuid.New()

	for _, y := range []int{2022, 2023, 2024, 2025} {
		require.NoError(t, repo.Create(ctx, &model.Payroll{BusinessID: biz, EmployeeName: "A", GrossSalary: dec("500"), PeriodMonth: 6, PeriodYear: y}))
	}

	got, err := repo.ListByYears(ctx, biz, 2023, 2024)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2023, got[0].PeriodYear)
	assert.Equal(t, 2024, got[1].PeriodYear)
}

func TestTaxCalculationRepository_ListAndStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaxCalculationRepository(db)
	ctx := context.Background()
	biz := uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		calc := &model.TaxCalculation{
			BusinessID:        biz,
			PeriodStart:       date("2024-01-01"),
			PeriodEnd:         date("2024-03-31"),
			TotalRevenue:      dec("1000"),
			TotalTaxLiability: dec("288"),
			Status:            model.CalculationDraft,
		}
		require.NoError(t, repo.Create(ctx, calc))
		ids = append(ids, calc.ID)
	}
	require.NoError(t, repo.Create(ctx, &model.TaxCalculation{BusinessID: uuid.New(), PeriodStart: date("2024-01-01"), PeriodEnd: date("2024-01-31"), Status: model.CalculationDraft}))

	page, total, err := repo.List(ctx, TaxCalculationFilter{BusinessID: &biz, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID, "newest first")

	_, total, err = repo.List(ctx, TaxCalculationFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	page, _, err = repo.List(ctx, TaxCalculationFilter{BusinessID: &biz, Offset: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ID, "offset skips the newest rows")

	ok, err := repo.UpdateStatus(ctx, ids[0], model.CalculationDraft, model.CalculationFinal)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatus(ctx, ids[0], model.CalculationDraft, model.CalculationFinal)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, model.CalculationFinal, stored.Status)
	assert.True(t, stored.TotalTaxLiability.Equal(dec("288")))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaxDeadlineRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaxDeadlineRepository(db)
	ctx := context.Background()

	q1 := 1
	require.NoError(t, repo.Create(ctx, &model.TaxDeadline{TaxType: "vat", DeadlineDate: date("2024-04-22"), PeriodYear: 2024, PeriodQuarter: &q1}))
	require.NoError(t, repo.Create(ctx, &model.TaxDeadline{TaxType: "income_tax", DeadlineDate: date("2024-03-01"), PeriodYear: 2024}))
	require.NoError(t, repo.Create(ctx, &model.TaxDeadline{TaxType: "income_tax", DeadlineDate: date("2025-03-01"), PeriodYear: 2025}))

	got, err := repo.List(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "income_tax", got[0].TaxType)
	require.NotNil(t, got[1].PeriodQuarter)
	assert.Equal(t, 1, *got[1].PeriodQuarter)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	audits := NewAuditRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		assert.True(t, InTx(txCtx))
		require.NoError(t, audits.Log(txCtx, &model.AuditLog{Action: model.ActionSupersedeTaxRate, EntityID: "rate-1"}))
		return tm.RunInTx(txCtx, func(inner context.Context) error {
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, InTx(ctx))

	logs, err := audits.ListByEntity(ctx, "rate-1")
	require.NoError(t, err)
	assert.Empty(t, logs)

	require.NoError(t, tm.RunInTx(ctx, func(txCtx context.Context) error {
		return audits.Log(txCtx, &model.AuditLog{Action: model.ActionSupersedeTaxRate, EntityID: "rate-1"})
	}))
	logs, err = audits.ListByEntity(ctx, "rate-1")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
