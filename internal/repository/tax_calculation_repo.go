package repository

import (
	"context"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaxCalculationFilter struct {
	BusinessID *uuid.UUID
	Offset     int
	Limit      int
}

type TaxCalculationRepository interface {
	Create(ctx context.Context, calc *model.TaxCalculation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxCalculation, error)
	List(ctx context.Context, filter TaxCalculationFilter) ([]model.TaxCalculation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.CalculationStatus) (bool, error)
}

type taxCalculationRepository struct {
	db *gorm.DB
}

func NewTaxCalculationRepository(db *gorm.DB) TaxCalculationRepository {
	return &taxCalculationRepository{db: db}
}

func (r *taxCalculationRepository) Create(ctx context.Context, calc *model.TaxCalculation) error {
	return GetDB(ctx, r.db).Create(calc).Error
}

func (r *taxCalculationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxCalculation, error) {
	var calc model.TaxCalculation
	if err := GetDB(ctx, r.db).First(&calc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &calc, nil
}

func (r *taxCalculationRepository) List(ctx context.Context, filter TaxCalculationFilter) ([]model.TaxCalculation, int64, error) {
	var calcs []model.TaxCalculation
	var total int64

	db := GetDB(ctx, r.db).Model(&model.TaxCalculation{})
	if filter.BusinessID != nil {
		db = db.Where("business_id = ?", *filter.BusinessID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("created_at desc").Offset(filter.Offset).Limit(filter.Limit).Find(&calcs).Error; err != nil {
		return nil, 0, err
	}

	return calcs, total, nil
}

// UpdateStatus moves a calculation from one status to another. It reports
// false when the row was not in the expected status, so a concurrent finalize
// cannot apply twice.
func (r *taxCalculationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.CalculationStatus) (bool, error) {
	res := GetDB(ctx, r.db).Model(&model.TaxCalculation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
