package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
)

// AttendanceRepository defines the interface for attendance data operations.
// Uniqueness of (employee, date) is enforced by the database index, not here.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entity.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.Attendance, error)
	// ListByEmployeeBetween returns rows with date in [start, end] inclusive.
	ListByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]entity.Attendance, error)
	Update(ctx context.Context, attendance *entity.Attendance) error
	Delete(ctx context.Context, id uuid.UUID) error
}
