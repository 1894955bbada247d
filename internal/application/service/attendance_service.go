package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
)

// AttendanceService handles daily attendance marking
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkAttendanceInput represents the mark attendance input
type MarkAttendanceInput struct {
	EmployeeID uuid.UUID
	Date       time.Time
	Status     enum.AttendanceStatus
}

// MarkAttendance records one employee's status for one calendar day.
// Marking the same day twice is a conflict; the unique index is the
// authority, so two concurrent requests cannot both succeed.
func (s *AttendanceService) MarkAttendance(ctx context.Context, input *MarkAttendanceInput) (*entity.Attendance, error) {
	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid attendance status")
	}

	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	attendance := &entity.Attendance{
		EmployeeID: input.EmployeeID,
		Date:       truncateToDay(input.Date),
		Status:     input.Status,
	}

	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Attendance already marked for this date")
		}
		return nil, err
	}
	return attendance, nil
}

// UpdateAttendance changes the status of an existing attendance row
func (s *AttendanceService) UpdateAttendance(ctx context.Context, employeeID uuid.UUID, date time.Time, status enum.AttendanceStatus) (*entity.Attendance, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid attendance status")
	}

	attendance, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, truncateToDay(date))
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, apperror.NewNotFoundError("Attendance")
	}

	attendance.Status = status
	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// GetDailyAttendance lists every attendance row for one calendar day
func (s *AttendanceService) GetDailyAttendance(ctx context.Context, date time.Time) ([]entity.Attendance, error) {
	return s.attendanceRepo.ListByDate(ctx, truncateToDay(date))
}

// GetMonthlyAttendance lists one employee's attendance for a calendar month
func (s *AttendanceService) GetMonthlyAttendance(ctx context.Context, employeeID uuid.UUID, month, year int) ([]entity.Attendance, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewBadRequestError("Month must be between 1 and 12")
	}
	start, end := monthWindow(month, year)
	return s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, start, end)
}

// DeleteAttendance removes an attendance row
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// truncateToDay strips the time-of-day component so date columns compare
// cleanly regardless of what clock time the client sent.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthWindow returns the first and last day of a calendar month.
func monthWindow(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// daysInMonth returns the number of calendar days in a month, leap years
// included.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// endOfDay pushes a midnight boundary to the last instant of that day, for
// comparing against full timestamps instead of truncated dates.
func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond)
}
