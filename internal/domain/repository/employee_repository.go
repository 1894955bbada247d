package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/pkg/pagination"
)

// EmployeeRepository defines the interface for employee data operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	// Deactivate flips the IsActive flag; employee rows are never deleted.
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *EmployeeFilterParams) ([]entity.Employee, int64, error)
	// ListActive returns every active employee, unpaginated, for payroll runs.
	ListActive(ctx context.Context) ([]entity.Employee, error)
	CountActive(ctx context.Context) (int64, error)
}

// EmployeeFilterParams contains filtering parameters for employee queries
type EmployeeFilterParams struct {
	Pagination      *pagination.PaginationParams
	Search          string
	IncludeInactive bool
}
