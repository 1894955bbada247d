package service

import (
	"context"
	"strings"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/utils"
)

// ProductService manages the file-backed product catalog
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Price    float64
	Category string
	Unit     string
}

// CreateProduct adds a product to the catalog. The key is derived from the
// name when possible so catalog files stay human readable.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	id := utils.Slugify(input.Name)
	if id == "" {
		id = utils.CatalogID()
	}
	existing, err := s.productRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	product := &entity.Product{
		ID:       id,
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Unit:     input.Unit,
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns the whole catalog
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct retrieves a product by its catalog key
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name     *string
	Price    *float64
	Category *string
	Unit     *string
}

// UpdateProduct edits a catalog entry. Past sales keep the name and price
// they were recorded with.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
