package repository

import (
	"context"

	"taxledger/internal/model"

	"gorm.io/gorm"
)

type TaxDeadlineRepository interface {
	Create(ctx context.Context, deadline *model.TaxDeadline) error
	List(ctx context.Context, year int) ([]model.TaxDeadline, error)
}

type taxDeadlineRepository struct {
	db *gorm.DB
}

func NewTaxDeadlineRepository(db *gorm.DB) TaxDeadlineRepository {
	return &taxDeadlineRepository{db: db}
}

func (r *taxDeadlineRepository) Create(ctx context.Context, deadline *model.TaxDeadline) error {
	return GetDB(ctx, r.db).Create(deadline).Error
}

// List returns deadlines by date ascending. year 0 means every year.
func (r *taxDeadlineRepository) List(ctx context.Context, year int) ([]model.TaxDeadline, error) {
	var deadlines []model.TaxDeadline
	query := GetDB(ctx, r.db)
	if year != 0 {
		query = query.Where("period_year = ?", year)
	}
	if err := query.Order("deadline_date asc").Find(&deadlines).Error; err != nil {
		return nil, err
	}
	return deadlines, nil
}
