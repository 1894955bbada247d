package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Salary is the immutable result of one payroll computation for one
// employee and one (month, year) period. The composite unique index makes
// the computation idempotent: once a row exists the period is settled and
// the batch never recomputes it. Only Status may change afterwards.
type Salary struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_employee_period" json:"employee_id"`
	Month             int               `gorm:"not null;uniqueIndex:idx_employee_period" json:"month"`
	Year              int               `gorm:"not null;uniqueIndex:idx_employee_period" json:"year"`
	BasicSalary       float64           `gorm:"not null" json:"basic_salary"`
	PresentDays       int               `gorm:"not null;default:0" json:"present_days"`
	AbsentDays        int               `gorm:"not null;default:0" json:"absent_days"`
	HalfDays          int               `gorm:"not null;default:0" json:"half_days"`
	TotalWorkingDays  int               `gorm:"not null" json:"total_working_days"`
	CalculatedSalary  float64           `gorm:"not null" json:"calculated_salary"`
	AdvanceDeductions float64           `gorm:"not null;default:0" json:"advance_deductions"`
	NetSalary         float64           `gorm:"not null" json:"net_salary"`
	Status            enum.SalaryStatus `gorm:"not null;default:0" json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// BeforeCreate generates a UUID before creating a new salary record
func (s *Salary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Salary model
func (Salary) TableName() string {
	return "salaries"
}
