package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payroll is one employee's pay for one calendar month
type Payroll struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"business_id"`
	EmployeeName        string          `gorm:"type:varchar(255);not null" json:"employee_name"`
	GrossSalary         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"gross_salary"`
	PeriodMonth         int             `gorm:"not null" json:"period_month"` // 1-12
	PeriodYear          int             `gorm:"not null;index" json:"period_year"`
	SocialContributions decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"social_contributions"`
	IncomeTax           decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"income_tax"` // Withheld, as entered
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// TableName keeps the table singular, as the dashboard expects
func (Payroll) TableName() string {
	return "payroll"
}

func (p *Payroll) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// PeriodDate is the first day of the payroll month
func (p Payroll) PeriodDate() time.Time {
	return time.Date(p.PeriodYear, time.Month(p.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
}
