package repository

import (
	"context"
	"time"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RevenueRepository interface {
	Create(ctx context.Context, revenue *model.Revenue) error
	ListWithin(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]model.Revenue, error)
}

type revenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) Create(ctx context.Context, revenue *model.Revenue) error {
	return GetDB(ctx, r.db).Create(revenue).Error
}

// ListWithin returns revenues whose booked period lies entirely inside
// [start, end]. A revenue straddling either bound is excluded.
func (r *revenueRepository) ListWithin(ctx context.Context, businessID uuid.UUID, start, end time.Time) ([]model.Revenue, error) {
	var revenues []model.Revenue
	if err := GetDB(ctx, r.db).
		Where("business_id = ? AND period_start >= ? AND period_end <= ?", businessID, start, end).
		Order("created_at").
		Find(&revenues).Error; err != nil {
		return nil, err
	}
	return revenues, nil
}
