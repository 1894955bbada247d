package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
)

// AdvanceRepository defines the interface for cash advance data operations
type AdvanceRepository interface {
	Create(ctx context.Context, advance *entity.Advance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Advance, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, onlyUndeducted bool) ([]entity.Advance, error)
	// ListUndeductedBetween returns un-deducted advances recorded in
	// [start, end] inclusive. The window filters on the creation timestamp,
	// not the client-supplied date, so a backdated advance cannot attach
	// itself to an already settled period.
	ListUndeductedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Advance, error)
	// ListDeductedBetween returns the advances a payroll run already netted
	// out of the period, for the salary detail view.
	ListDeductedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Advance, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
