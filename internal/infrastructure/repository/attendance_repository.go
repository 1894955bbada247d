package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	domainRepo "github.com/sweetline/mithas-api/internal/domain/repository"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *entity.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.Attendance, error) {
	var attendance entity.Attendance
	err := r.db.WithContext(ctx).
		First(&attendance, "employee_id = ? AND date = ?", employeeID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attendance, err
}

func (r *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start, end).
		Order("date ASC").
		Find(&attendances).Error
	return attendances, err
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]entity.Attendance, error) {
	var attendances []entity.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("date = ?", date).
		Find(&attendances).Error
	return attendances, err
}

func (r *attendanceRepository) Update(ctx context.Context, attendance *entity.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Attendance{}, "id = ?", id).Error
}
