package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
)

// AdvanceService handles cash advances against future salary
type AdvanceService struct {
	advanceRepo  repository.AdvanceRepository
	employeeRepo repository.EmployeeRepository
}

// NewAdvanceService creates a new advance service
func NewAdvanceService(advanceRepo repository.AdvanceRepository, employeeRepo repository.EmployeeRepository) *AdvanceService {
	return &AdvanceService{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateAdvanceInput represents the create advance input
type CreateAdvanceInput struct {
	EmployeeID uuid.UUID
	Amount     float64
	Date       time.Time
	Notes      string
}

// CreateAdvance records a cash advance for an employee
func (s *AdvanceService) CreateAdvance(ctx context.Context, input *CreateAdvanceInput) (*entity.Advance, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Advance amount must be positive")
	}

	employee, err := s.employeeRepo.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	advance := &entity.Advance{
		EmployeeID: input.EmployeeID,
		Amount:     input.Amount,
		Date:       truncateToDay(input.Date),
		Notes:      input.Notes,
	}

	if err := s.advanceRepo.Create(ctx, advance); err != nil {
		return nil, err
	}
	return advance, nil
}

// ListAdvances lists an employee's advances, optionally only the ones not
// yet netted out of a salary
func (s *AdvanceService) ListAdvances(ctx context.Context, employeeID uuid.UUID, onlyUndeducted bool) ([]entity.Advance, error) {
	return s.advanceRepo.ListByEmployee(ctx, employeeID, onlyUndeducted)
}

// DeleteAdvance removes an advance. An advance already consumed by a
// payroll run is part of a settled salary and cannot be deleted.
func (s *AdvanceService) DeleteAdvance(ctx context.Context, id uuid.UUID) error {
	advance, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if advance == nil {
		return apperror.NewNotFoundError("Advance")
	}
	if advance.IsDeducted {
		return apperror.NewConflictError("Advance has already been deducted from a salary")
	}
	return s.advanceRepo.Delete(ctx, id)
}
