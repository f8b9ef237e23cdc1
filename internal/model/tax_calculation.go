package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculationStatus enum
type CalculationStatus string

const (
	CalculationDraft CalculationStatus = "draft"
	CalculationFinal CalculationStatus = "final"
)

// TaxCalculation is a persisted engine result. Rows are append-only; only the
// status may move from draft to final.
type TaxCalculation struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"business_id"`
	PeriodStart         time.Time         `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd           time.Time         `gorm:"type:date;not null" json:"period_end"`
	TotalRevenue        decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"total_revenue"`
	TotalExpenses       decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"total_expenses"`
	TaxableIncome       decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"taxable_income"`
	IncomeTax           decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"income_tax"`
	VATPayable          decimal.Decimal   `gorm:"column:vat_payable;type:decimal(18,4);not null" json:"vat_payable"`
	SocialContributions decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"social_contributions"`
	TotalTaxLiability   decimal.Decimal   `gorm:"type:decimal(18,4);not null" json:"total_tax_liability"`
	Status              CalculationStatus `gorm:"type:varchar(10);not null;default:'draft';index" json:"status"`
	CreatedAt           time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func (c *TaxCalculation) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}
