package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	domainRepo "github.com/sweetline/mithas-api/internal/domain/repository"
	"gorm.io/gorm"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domainRepo.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Employee{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *employeeRepository) List(ctx context.Context, params *domainRepo.EmployeeFilterParams) ([]entity.Employee, int64, error) {
	var employees []entity.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Employee{})
	if !params.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&employees).Error

	return employees, total, err
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Employee{}).
		Where("is_active = ?", true).
		Count(&total).Error
	return total, err
}
