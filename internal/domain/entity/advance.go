package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Advance is a cash advance handed to an employee, later netted out of a
// payroll run. IsDeducted flips exactly once, when the covering salary
// record has been durably created.
type Advance struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	Amount       float64    `gorm:"not null" json:"amount"`
	Date         time.Time  `gorm:"type:date;not null" json:"date"`
	IsDeducted   bool       `gorm:"default:false;index" json:"is_deducted"`
	DeductedDate *time.Time `json:"deducted_date,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new advance
func (a *Advance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Advance model
func (Advance) TableName() string {
	return "advances"
}
