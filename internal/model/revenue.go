package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Revenue is income booked for an explicit sub-period
type Revenue struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"business_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	PeriodStart time.Time       `gorm:"type:date;not null;index" json:"period_start"`
	PeriodEnd   time.Time       `gorm:"type:date;not null;index" json:"period_end"`
	Description string          `gorm:"type:text" json:"description"`
	VATIncluded bool            `gorm:"default:false" json:"vat_included"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (r *Revenue) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}
