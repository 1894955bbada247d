package repository

import (
	"context"

	"github.com/sweetline/mithas-api/internal/domain/entity"
)

// ProductRepository defines the interface for the file-backed product
// catalog. Implementations load and save the collection as a whole
// snapshot; callers see plain record-level operations.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	// Save inserts or replaces the record with the same ID.
	Save(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// StockRepository defines the interface for the file-backed stock ledger.
type StockRepository interface {
	List(ctx context.Context) ([]entity.StockItem, error)
	Get(ctx context.Context, id string) (*entity.StockItem, error)
	Save(ctx context.Context, item *entity.StockItem) error
	Delete(ctx context.Context, id string) error
}
