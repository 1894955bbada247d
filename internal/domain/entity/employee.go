package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee represents a factory worker on the payroll.
// Deleting an employee only flips IsActive; rows are never removed so that
// historical salary and advance records keep a valid reference.
type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Role        string    `gorm:"size:100" json:"role"`
	JoiningDate time.Time `gorm:"type:date" json:"joining_date"`
	BasicSalary float64   `gorm:"not null;default:0" json:"basic_salary"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Attendances []Attendance `gorm:"foreignKey:EmployeeID" json:"-"`
	Advances    []Advance    `gorm:"foreignKey:EmployeeID" json:"-"`
	Salaries    []Salary     `gorm:"foreignKey:EmployeeID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
