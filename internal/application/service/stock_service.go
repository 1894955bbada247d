package service

import (
	"context"
	"strings"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/utils"
)

// StockService manages the file-backed stock ledger
type StockService struct {
	stockRepo repository.StockRepository
}

// NewStockService creates a new stock service
func NewStockService(stockRepo repository.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// UpsertStockInput represents the create or replace stock item input
type UpsertStockInput struct {
	Name     string
	Quantity float64
	Unit     string
}

// UpsertStock creates or replaces a stock item by name-derived key
func (s *StockService) UpsertStock(ctx context.Context, input *UpsertStockInput) (*entity.StockItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Stock item name is required")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	id := utils.Slugify(input.Name)
	if id == "" {
		id = utils.CatalogID()
	}

	item := &entity.StockItem{
		ID:       id,
		Name:     input.Name,
		Quantity: input.Quantity,
		Unit:     input.Unit,
	}
	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListStock returns the whole stock ledger
func (s *StockService) ListStock(ctx context.Context) ([]entity.StockItem, error) {
	return s.stockRepo.List(ctx)
}

// AdjustStock applies a signed delta to an item's quantity, flooring at
// zero. Factory floor counts drift; a floor beats a negative ledger.
func (s *StockService) AdjustStock(ctx context.Context, id string, delta float64) (*entity.StockItem, error) {
	item, err := s.stockRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Stock item")
	}

	item.Quantity += delta
	if item.Quantity < 0 {
		item.Quantity = 0
	}

	if err := s.stockRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteStock removes a stock item from the ledger
func (s *StockService) DeleteStock(ctx context.Context, id string) error {
	return s.stockRepo.Delete(ctx, id)
}
