package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RateType enum
type RateType string

const (
	RateTypeIncomeTax RateType = "income_tax"
	RateTypeVAT       RateType = "vat"
	RateTypeSocial    RateType = "social"
	RateTypePayroll   RateType = "payroll"
)

// Valid reports whether t is a known rate type
func (t RateType) Valid() bool {
	switch t {
	case RateTypeIncomeTax, RateTypeVAT, RateTypeSocial, RateTypePayroll:
		return true
	}
	return false
}

// TaxRate stores a regime's rate with temporal validity.
// A rate is superseded, never deleted: the old row gets an EffectiveTo and a new
// open-ended row is inserted.
type TaxRate struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Regime        TaxRegime       `gorm:"type:varchar(20);not null;index:idx_tax_rates_lookup" json:"regime"`
	RateType      RateType        `gorm:"type:varchar(20);not null;index:idx_tax_rates_lookup" json:"rate_type"`
	RateValue     decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"rate_value"`   // percentage, e.g. 20 = 20%
	EffectiveFrom time.Time       `gorm:"type:date;not null;index" json:"effective_from"` // Start date
	EffectiveTo   *time.Time      `gorm:"type:date;index" json:"effective_to"`            // End date, nullable = currently active
	Description   string          `gorm:"type:text" json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (r *TaxRate) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

// Fraction returns the rate as a multiplier (20% -> 0.2)
func (r TaxRate) Fraction() decimal.Decimal {
	return r.RateValue.Shift(-2)
}
