package repository

import (
	"context"
	"time"

	"taxledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaxRateRepository interface {
	Create(ctx context.Context, rate *model.TaxRate) error
	List(ctx context.Context, regime model.TaxRegime) ([]model.TaxRate, error)
	ListActive(ctx context.Context, regime model.TaxRegime) ([]model.TaxRate, error)
	FindActive(ctx context.Context, regime model.TaxRegime, rateType model.RateType) (*model.TaxRate, error)
	Close(ctx context.Context, id uuid.UUID, effectiveTo time.Time) error
}

type taxRateRepository struct {
	db *gorm.DB
}

func NewTaxRateRepository(db *gorm.DB) TaxRateRepository {
	return &taxRateRepository{db: db}
}

func (r *taxRateRepository) Create(ctx context.Context, rate *model.TaxRate) error {
	return GetDB(ctx, r.db).Create(rate).Error
}

// List returns all rates, newest first. An empty regime lists every regime.
func (r *taxRateRepository) List(ctx context.Context, regime model.TaxRegime) ([]model.TaxRate, error) {
	var rates []model.TaxRate
	query := GetDB(ctx, r.db)
	if regime != "" {
		query = query.Where("regime = ?", regime)
	}
	if err := query.Order("effective_from desc").Order("rate_type").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// ListActive returns the regime's rates that have no effective_to. It does not
// look at effective_from.
func (r *taxRateRepository) ListActive(ctx context.Context, regime model.TaxRegime) ([]model.TaxRate, error) {
	var rates []model.TaxRate
	if err := GetDB(ctx, r.db).
		Where("regime = ? AND effective_to IS NULL", regime).
		Order("created_at").
		Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *taxRateRepository) FindActive(ctx context.Context, regime model.TaxRegime, rateType model.RateType) (*model.TaxRate, error) {
	var rate model.TaxRate
	if err := GetDB(ctx, r.db).
		Where("regime = ? AND rate_type = ? AND effective_to IS NULL", regime, rateType).
		Order("effective_from DESC").
		First(&rate).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

// Close sets effective_to on a still-open rate. Closing an already closed rate
// is reported as gorm.ErrRecordNotFound.
func (r *taxRateRepository) Close(ctx context.Context, id uuid.UUID, effectiveTo time.Time) error {
	res := GetDB(ctx, r.db).Model(&model.TaxRate{}).
		Where("id = ? AND effective_to IS NULL", id).
		Update("effective_to", effectiveTo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
