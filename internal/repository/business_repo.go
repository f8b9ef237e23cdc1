package repository

import (
	"context"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *model.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Business, error)
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(ctx context.Context, business *model.Business) error {
	return GetDB(ctx, r.db).Create(business).Error
}

// FindByID returns gorm.ErrRecordNotFound when the business does not exist
func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	var business model.Business
	if err := GetDB(ctx, r.db).First(&business, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}
