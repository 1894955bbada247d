package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	domainRepo "github.com/sweetline/mithas-api/internal/domain/repository"
	"gorm.io/gorm"
)

type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository creates a new salary repository
func NewSalaryRepository(db *gorm.DB) domainRepo.SalaryRepository {
	return &salaryRepository{db: db}
}

// CreateWithDeductions inserts the salary row and flips the consumed
// advances inside one transaction. The unique index on
// (employee_id, month, year) is checked by the insert itself, so a losing
// concurrent run rolls back without touching any advance.
func (r *salaryRepository) CreateWithDeductions(ctx context.Context, salary *entity.Salary, advanceIDs []uuid.UUID, deductedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(salary).Error; err != nil {
			return err
		}
		if len(advanceIDs) == 0 {
			return nil
		}
		return tx.Model(&entity.Advance{}).
			Where("id IN ?", advanceIDs).
			Updates(map[string]interface{}{
				"is_deducted":   true,
				"deducted_date": deductedAt,
			}).Error
	})
}

func (r *salaryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error) {
	var salary entity.Salary
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&salary, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &salary, err
}

func (r *salaryRepository) GetByPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (*entity.Salary, error) {
	var salary entity.Salary
	err := r.db.WithContext(ctx).
		First(&salary, "employee_id = ? AND month = ? AND year = ?", employeeID, month, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &salary, err
}

func (r *salaryRepository) List(ctx context.Context, params *domainRepo.SalaryFilterParams) ([]entity.Salary, int64, error) {
	var salaries []entity.Salary
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Salary{})
	if params.EmployeeID != nil {
		query = query.Where("employee_id = ?", *params.EmployeeID)
	}
	if params.Month != nil {
		query = query.Where("month = ?", *params.Month)
	}
	if params.Year != nil {
		query = query.Where("year = ?", *params.Year)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Employee").
		Order("year DESC, month DESC, created_at DESC").
		Find(&salaries).Error

	return salaries, total, err
}

func (r *salaryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SalaryStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Salary{}).
		Where("id = ?", id).
		Update("status", status).Error
}
