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

type advanceRepository struct {
	db *gorm.DB
}

// NewAdvanceRepository creates a new advance repository
func NewAdvanceRepository(db *gorm.DB) domainRepo.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) Create(ctx context.Context, advance *entity.Advance) error {
	return r.db.WithContext(ctx).Create(advance).Error
}

func (r *advanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Advance, error) {
	var advance entity.Advance
	err := r.db.WithContext(ctx).First(&advance, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &advance, err
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, onlyUndeducted bool) ([]entity.Advance, error) {
	var advances []entity.Advance
	query := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if onlyUndeducted {
		query = query.Where("is_deducted = ?", false)
	}
	err := query.Order("date DESC").Find(&advances).Error
	return advances, err
}

func (r *advanceRepository) ListUndeductedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Advance, error) {
	var advances []entity.Advance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_deducted = ? AND created_at >= ? AND created_at <= ?",
			employeeID, false, start, end).
		Order("created_at ASC").
		Find(&advances).Error
	return advances, err
}

func (r *advanceRepository) ListDeductedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Advance, error) {
	var advances []entity.Advance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_deducted = ? AND created_at >= ? AND created_at <= ?",
			employeeID, true, start, end).
		Order("created_at ASC").
		Find(&advances).Error
	return advances, err
}

func (r *advanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Advance{}, "id = ?", id).Error
}
