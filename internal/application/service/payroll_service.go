package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/pagination"
)

// PayrollService computes monthly salaries from attendance and nets out
// cash advances. A (employee, month, year) period is settled exactly once;
// reruns skip settled employees instead of recomputing them.
type PayrollService struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	advanceRepo    repository.AdvanceRepository
	salaryRepo     repository.SalaryRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	employeeRepo repository.EmployeeRepository,
	attendanceRepo repository.AttendanceRepository,
	advanceRepo repository.AdvanceRepository,
	salaryRepo repository.SalaryRepository,
) *PayrollService {
	return &PayrollService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		salaryRepo:     salaryRepo,
	}
}

// PayrollFailure records one employee the batch could not settle
type PayrollFailure struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Name       string    `json:"name"`
	Reason     string    `json:"reason"`
}

// PayrollRunResult summarises one payroll batch. Failures are isolated:
// one employee failing never aborts the rest of the run.
type PayrollRunResult struct {
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Processed []entity.Salary  `json:"processed"`
	Skipped   int              `json:"skipped"`
	Failed    []PayrollFailure `json:"failed,omitempty"`
}

// GeneratePayroll settles the given month for every active employee.
func (s *PayrollService) GeneratePayroll(ctx context.Context, month, year int) (*PayrollRunResult, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewBadRequestError("Month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, apperror.NewBadRequestError("Year is out of range")
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &PayrollRunResult{
		Month:     month,
		Year:      year,
		Processed: []entity.Salary{},
	}

	for i := range employees {
		employee := &employees[i]
		salary, err := s.settleEmployee(ctx, employee, month, year)
		if err != nil {
			log.Printf("payroll: employee %s failed for %d/%d: %v", employee.ID, month, year, err)
			result.Failed = append(result.Failed, PayrollFailure{
				EmployeeID: employee.ID,
				Name:       employee.Name,
				Reason:     err.Error(),
			})
			continue
		}
		if salary == nil {
			result.Skipped++
			continue
		}
		result.Processed = append(result.Processed, *salary)
	}

	return result, nil
}

// settleEmployee computes and persists one employee's salary for the
// period. Returns nil, nil when the period is already settled.
func (s *PayrollService) settleEmployee(ctx context.Context, employee *entity.Employee, month, year int) (*entity.Salary, error) {
	existing, err := s.salaryRepo.GetByPeriod(ctx, employee.ID, month, year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	start, end := monthWindow(month, year)
	totalDays := daysInMonth(month, year)

	attendances, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employee.ID, start, end)
	if err != nil {
		return nil, err
	}

	var present, absent, half int
	for _, a := range attendances {
		switch a.Status {
		case enum.AttendancePresent:
			present++
		case enum.AttendanceAbsent:
			absent++
		case enum.AttendanceHalfDay:
			half++
		}
	}

	// A half day counts as half a paid day. The per-day rate divides by
	// the calendar length of the month, so February pays a higher daily
	// rate than July for the same basic salary.
	paidDays := float64(present) + 0.5*float64(half)
	calculated := paidDays * employee.BasicSalary / float64(totalDays)

	// Advances are matched on their creation timestamp, so the window runs
	// through the end of the last day, not just its midnight.
	advances, err := s.advanceRepo.ListUndeductedBetween(ctx, employee.ID, start, endOfDay(end))
	if err != nil {
		return nil, err
	}

	var deductions float64
	advanceIDs := make([]uuid.UUID, 0, len(advances))
	for _, adv := range advances {
		deductions += adv.Amount
		advanceIDs = append(advanceIDs, adv.ID)
	}

	net := calculated - deductions
	if net < 0 {
		net = 0
	}

	salary := &entity.Salary{
		EmployeeID:        employee.ID,
		Month:             month,
		Year:              year,
		BasicSalary:       employee.BasicSalary,
		PresentDays:       present,
		AbsentDays:        absent,
		HalfDays:          half,
		TotalWorkingDays:  totalDays,
		CalculatedSalary:  calculated,
		AdvanceDeductions: deductions,
		NetSalary:         net,
		Status:            enum.SalaryPending,
	}

	if err := s.salaryRepo.CreateWithDeductions(ctx, salary, advanceIDs, time.Now()); err != nil {
		// A concurrent run settled the period first. Its transaction marked
		// the advances; ours rolled back without touching anything.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, err
	}
	return salary, nil
}

// SalaryDetail pairs a salary record with the advances its deductions
// came from.
type SalaryDetail struct {
	Salary   *entity.Salary   `json:"salary"`
	Advances []entity.Advance `json:"advances"`
}

// GetSalary retrieves a salary record by ID together with the advances
// that were netted out of it
func (s *PayrollService) GetSalary(ctx context.Context, id uuid.UUID) (*SalaryDetail, error) {
	salary, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if salary == nil {
		return nil, apperror.NewNotFoundError("Salary")
	}

	start, end := monthWindow(salary.Month, salary.Year)
	advances, err := s.advanceRepo.ListDeductedBetween(ctx, salary.EmployeeID, start, endOfDay(end))
	if err != nil {
		return nil, err
	}

	return &SalaryDetail{Salary: salary, Advances: advances}, nil
}

// ListSalaries lists salary records with optional period and status filters
func (s *PayrollService) ListSalaries(ctx context.Context, params *repository.SalaryFilterParams) (*pagination.PaginatedResult[entity.Salary], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	salaries, total, err := s.salaryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(salaries, pag), nil
}

// MarkSalaryPaid flips a pending salary record to paid
func (s *PayrollService) MarkSalaryPaid(ctx context.Context, id uuid.UUID) (*entity.Salary, error) {
	salary, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if salary == nil {
		return nil, apperror.NewNotFoundError("Salary")
	}
	if salary.Status == enum.SalaryPaid {
		return nil, apperror.NewConflictError("Salary is already marked paid")
	}

	if err := s.salaryRepo.UpdateStatus(ctx, id, enum.SalaryPaid); err != nil {
		return nil, err
	}
	salary.Status = enum.SalaryPaid
	return salary, nil
}
