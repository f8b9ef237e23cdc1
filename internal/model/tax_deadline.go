package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxDeadline is a filing or payment date from the national tax calendar
type TaxDeadline struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaxType        string    `gorm:"type:varchar(50);not null" json:"tax_type"`
	DeadlineDate   time.Time `gorm:"type:date;not null;index" json:"deadline_date"`
	PeriodYear     int       `gorm:"not null;index" json:"period_year"`
	PeriodQuarter  *int      `json:"period_quarter"` // nil for annual deadlines
	Description    string    `gorm:"type:text" json:"description"`
	IsReminderSent bool      `gorm:"default:false" json:"is_reminder_sent"`
	CreatedAt      time.Time `json:"created_at"`
}

func (d *TaxDeadline) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	return nil
}
