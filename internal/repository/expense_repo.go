package repository

import (
	"context"
	"time"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	ListBetween(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]model.Expense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return GetDB(ctx, r.db).Create(expense).Error
}

// ListBetween returns expenses dated in [start, end], both inclusive
func (r *expenseRepository) ListBetween(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := GetDB(ctx, r.db).
		Where("business_id = ? AND expense_date >= ? AND expense_date <= ?", businessID, start, end).
		Order("created_at").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
