package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/pagination"
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Name        string
	Role        string
	JoiningDate time.Time
	BasicSalary float64
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.BasicSalary < 0 {
		return nil, apperror.NewBadRequestError("Basic salary cannot be negative")
	}

	employee := &entity.Employee{
		Name:        input.Name,
		Role:        input.Role,
		JoiningDate: input.JoiningDate,
		BasicSalary: input.BasicSalary,
		IsActive:    true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployees lists employees with pagination and optional name search
func (s *EmployeeService) ListEmployees(ctx context.Context, params *repository.EmployeeFilterParams) (*pagination.PaginatedResult[entity.Employee], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	employees, total, err := s.employeeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// UpdateEmployeeInput represents the update employee input
type UpdateEmployeeInput struct {
	Name        *string
	Role        *string
	JoiningDate *time.Time
	BasicSalary *float64
	IsActive    *bool
}

// UpdateEmployee updates an employee's details. A changed basic salary only
// affects payroll runs that happen afterwards; settled salary records keep
// the snapshot they were computed with.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.JoiningDate != nil {
		employee.JoiningDate = *input.JoiningDate
	}
	if input.BasicSalary != nil {
		if *input.BasicSalary < 0 {
			return nil, apperror.NewBadRequestError("Basic salary cannot be negative")
		}
		employee.BasicSalary = *input.BasicSalary
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeactivateEmployee marks an employee inactive. The row and all linked
// attendance, advance and salary history stay in place.
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Deactivate(ctx, id)
}
