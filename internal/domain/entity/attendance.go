package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Attendance is one employee's status for one calendar day.
// The composite unique index is the only guard against double marking;
// there is no application-level lock around it.
type Attendance struct {
	ID         uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_employee_date" json:"employee_id"`
	Date       time.Time             `gorm:"type:date;not null;uniqueIndex:idx_employee_date" json:"date"`
	Status     enum.AttendanceStatus `gorm:"not null;default:0" json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new attendance row
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Attendance model
func (Attendance) TableName() string {
	return "attendances"
}
