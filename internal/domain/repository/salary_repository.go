package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"github.com/sweetline/mithas-api/pkg/pagination"
)

// SalaryRepository defines the interface for salary record data operations
type SalaryRepository interface {
	// CreateWithDeductions persists the salary row and marks the advances it
	// consumed as deducted, atomically. If the period's unique index rejects
	// the salary (a concurrent run won the race), no advance is touched.
	CreateWithDeductions(ctx context.Context, salary *entity.Salary, advanceIDs []uuid.UUID, deductedAt time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error)
	// GetByPeriod returns nil, nil when no record exists for the period.
	GetByPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (*entity.Salary, error)
	List(ctx context.Context, params *SalaryFilterParams) ([]entity.Salary, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SalaryStatus) error
}

// SalaryFilterParams contains filtering parameters for salary queries
type SalaryFilterParams struct {
	Pagination *pagination.PaginationParams
	EmployeeID *uuid.UUID
	Month      *int
	Year       *int
	Status     *enum.SalaryStatus
}
