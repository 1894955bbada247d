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

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	// Items are created with the sale through the association.
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sale_items.created_at ASC")
		}).
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	applySaleFilters(query, params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("sale_date DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) TotalsBetween(ctx context.Context, start, end time.Time) (int64, float64, error) {
	var row struct {
		Count int64
		Sum   float64
	}
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS sum").
		Where("sale_date >= ? AND sale_date <= ?", start, end).
		Scan(&row).Error
	return row.Count, row.Sum, err
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.SaleItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Sale{}, "id = ?", id).Error
	})
}

type simpleSaleRepository struct {
	db *gorm.DB
}

// NewSimpleSaleRepository creates a new simple sale repository
func NewSimpleSaleRepository(db *gorm.DB) domainRepo.SimpleSaleRepository {
	return &simpleSaleRepository{db: db}
}

func (r *simpleSaleRepository) Create(ctx context.Context, sale *entity.SimpleSale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *simpleSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SimpleSale, error) {
	var sale entity.SimpleSale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *simpleSaleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.SimpleSale, int64, error) {
	var sales []entity.SimpleSale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SimpleSale{})
	applySaleFilters(query, params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("sale_date DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *simpleSaleRepository) TotalsBetween(ctx context.Context, start, end time.Time) (int64, float64, error) {
	var row struct {
		Count int64
		Sum   float64
	}
	err := r.db.WithContext(ctx).Model(&entity.SimpleSale{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS sum").
		Where("sale_date >= ? AND sale_date <= ?", start, end).
		Scan(&row).Error
	return row.Count, row.Sum, err
}

func (r *simpleSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SimpleSale{}, "id = ?", id).Error
}

func applySaleFilters(query *gorm.DB, params *domainRepo.SaleFilterParams) {
	if params.Search != "" {
		query.Where("customer_name ILIKE ?", "%"+params.Search+"%")
	}
	if params.StartDate != nil {
		query.Where("sale_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query.Where("sale_date <= ?", *params.EndDate)
	}
}
