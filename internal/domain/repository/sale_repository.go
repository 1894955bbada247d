package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/pkg/pagination"
)

// SaleRepository defines the interface for multi-item sale data operations
type SaleRepository interface {
	// Create persists the sale together with its items.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// TotalsBetween returns the count and summed total of sales dated in
	// [start, end] inclusive.
	TotalsBetween(ctx context.Context, start, end time.Time) (int64, float64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SimpleSaleRepository defines the interface for single-amount sale records
type SimpleSaleRepository interface {
	Create(ctx context.Context, sale *entity.SimpleSale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SimpleSale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.SimpleSale, int64, error)
	TotalsBetween(ctx context.Context, start, end time.Time) (int64, float64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}
