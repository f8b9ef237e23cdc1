package repository

import (
	"context"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayrollRepository interface {
	Create(ctx context.Context, entry *model.Payroll) error
	ListByYears(ctx context.Context, businessID uuid.UUID, fromYear, toYear int) ([]model.Payroll, error)
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) Create(ctx context.Context, entry *model.Payroll) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

// ListByYears filters on period_year only; month filtering is the caller's job
func (r *payrollRepository) ListByYears(ctx context.Context, businessID uuid.UUID, fromYear, toYear int) ([]model.Payroll, error) {
	var entries []model.Payroll
	if err := GetDB(ctx, r.db).
		Where("business_id = ? AND period_year >= ? AND period_year <= ?", businessID, fromYear, toYear).
		Order("created_at").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
