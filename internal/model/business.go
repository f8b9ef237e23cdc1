package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxRegime is the tax framework a business operates under
type TaxRegime string

const (
	RegimeSimplified TaxRegime = "simplified"
	RegimeGeneral    TaxRegime = "general"
)

// Valid reports whether r is a known regime
func (r TaxRegime) Valid() bool {
	return r == RegimeSimplified || r == RegimeGeneral
}

// BusinessStatus enum constants
const (
	BusinessActive   = "active"
	BusinessInactive = "inactive"
)

// Business is an LLC owned by a user. The tax engine only reads it.
type Business struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	RegistrationDate time.Time `gorm:"type:date" json:"registration_date"`
	TaxRegime        TaxRegime `gorm:"type:varchar(20);not null" json:"tax_regime"` // simplified, general
	VATApplicable    bool      `gorm:"default:false" json:"vat_applicable"`
	EmployeeCount    int       `gorm:"default:0" json:"employee_count"`
	Status           string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	assignID(&b.ID)
	return nil
}
