package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseCategory enum constants
const (
	ExpenseRent      = "rent"
	ExpenseUtilities = "utilities"
	ExpenseSupplies  = "supplies"
	ExpenseMarketing = "marketing"
	ExpenseSalaries  = "salaries"
	ExpenseOther     = "other"
)

// Expense is a single dated cost entry
type Expense struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"business_id"`
	Category      string          `gorm:"type:varchar(30);not null;default:'other'" json:"category"` // rent, utilities, supplies, marketing, salaries, other
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	ExpenseDate   time.Time       `gorm:"type:date;not null;index" json:"expense_date"`
	Description   string          `gorm:"type:text" json:"description"`
	VATDeductible bool            `gorm:"column:vat_deductible;default:false" json:"vat_deductible"` // Input VAT can be offset
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	assignID(&e.ID)
	return nil
}
