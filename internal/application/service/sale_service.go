package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/pagination"
)

// SaleService records sales. Itemised sales aggregate loosely typed line
// items from the client; malformed items are dropped rather than rejected,
// and every money figure is recomputed server side.
type SaleService struct {
	saleRepo       repository.SaleRepository
	simpleSaleRepo repository.SimpleSaleRepository
	productRepo    repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	simpleSaleRepo repository.SimpleSaleRepository,
	productRepo repository.ProductRepository,
) *SaleService {
	return &SaleService{
		saleRepo:       saleRepo,
		simpleSaleRepo: simpleSaleRepo,
		productRepo:    productRepo,
	}
}

// SaleItemInput is one raw line item as the client sent it. Fields are
// deliberately untyped: clients send numbers as strings, strings as
// numbers, and omit fields freely.
type SaleItemInput struct {
	ProductID any    `json:"product_id"`
	Name      string `json:"name"`
	Quantity  any    `json:"quantity"`
	Price     any    `json:"price"`
}

// CreateSaleInput represents the create itemised sale input
type CreateSaleInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []SaleItemInput
	Discount        any
	Tax             any
	PaymentMethod   string
	SaleDate        *time.Time
}

// CreateSale aggregates the raw items and persists the sale.
// An item survives only if productId, quantity and price all coerce to
// usable values; anything else is dropped without error. A sale with zero
// surviving items is still recorded.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	var items []entity.SaleItem
	var subTotal float64
	for _, raw := range input.Items {
		item, ok := s.buildItem(ctx, raw)
		if !ok {
			continue
		}
		items = append(items, item)
		subTotal += item.LineTotal
	}

	discount := coerceAmount(input.Discount)
	tax := coerceAmount(input.Tax)

	total := subTotal - discount + tax
	if total < 0 {
		total = 0
	}

	saleDate := time.Now()
	if input.SaleDate != nil {
		saleDate = *input.SaleDate
	}

	sale := &entity.Sale{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		SubTotal:        subTotal,
		Discount:        discount,
		Tax:             tax,
		TotalAmount:     total,
		PaymentMethod:   input.PaymentMethod,
		SaleDate:        saleDate,
		Items:           items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// buildItem coerces one raw line item. The line total is always computed
// from quantity and price here; a client-sent total is ignored.
func (s *SaleService) buildItem(ctx context.Context, raw SaleItemInput) (entity.SaleItem, bool) {
	productID := coerceString(raw.ProductID)
	if productID == "" {
		return entity.SaleItem{}, false
	}
	quantity, ok := coerceNumber(raw.Quantity)
	if !ok || quantity == 0 {
		return entity.SaleItem{}, false
	}
	price, ok := coerceNumber(raw.Price)
	if !ok || price == 0 {
		return entity.SaleItem{}, false
	}

	return entity.SaleItem{
		ProductID:   productID,
		ProductName: s.resolveProductName(ctx, productID, raw.Name),
		Quantity:    quantity,
		UnitPrice:   price,
		LineTotal:   quantity * price,
	}, true
}

// resolveProductName prefers the catalog's current name, then the name the
// client sent, then a generic label. The resolved name is copied onto the
// sale item so later catalog edits never rewrite history.
func (s *SaleService) resolveProductName(ctx context.Context, productID, clientName string) string {
	product, err := s.productRepo.Get(ctx, productID)
	if err == nil && product != nil {
		return product.Name
	}
	if strings.TrimSpace(clientName) != "" {
		return clientName
	}
	return "Product"
}

// coerceString renders the client value as a catalog key. Numbers are
// accepted; zero, empty and everything else is treated as missing.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		if val == 0 {
			return ""
		}
		return strconv.Itoa(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

// coerceNumber accepts numbers and numeric strings.
func coerceNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceAmount is coerceNumber with absent or malformed values read as 0.
func coerceAmount(v any) float64 {
	f, ok := coerceNumber(v)
	if !ok {
		return 0
	}
	return f
}

// CreateSimpleSaleInput represents the create simple sale input
type CreateSimpleSaleInput struct {
	CustomerName  string
	CustomerPhone string
	Amount        float64
	PaymentMethod string
	SaleDate      *time.Time
}

// CreateSimpleSale records a sale as a single customer and amount
func (s *SaleService) CreateSimpleSale(ctx context.Context, input *CreateSimpleSaleInput) (*entity.SimpleSale, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	saleDate := time.Now()
	if input.SaleDate != nil {
		saleDate = *input.SaleDate
	}

	sale := &entity.SimpleSale{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		SaleDate:      saleDate,
	}

	if err := s.simpleSaleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale retrieves an itemised sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists itemised sales with pagination and date filters
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListSimpleSales lists simple sales with pagination and date filters
func (s *SaleService) ListSimpleSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.SimpleSale], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	sales, total, err := s.simpleSaleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// DeleteSale removes an itemised sale and its items
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.Delete(ctx, id)
}

// DeleteSimpleSale removes a simple sale
func (s *SaleService) DeleteSimpleSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.simpleSaleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.simpleSaleRepo.Delete(ctx, id)
}
