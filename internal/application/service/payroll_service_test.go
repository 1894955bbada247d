package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"github.com/sweetline/mithas-api/internal/domain/repository"
)

// In-memory fakes for the payroll collaborators.

type fakeEmployeeRepo struct {
	employees []entity.Employee
	listErr   error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *entity.Employee) error  { return nil }
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id uuid.UUID) error    { return nil }
func (f *fakeEmployeeRepo) List(ctx context.Context, p *repository.EmployeeFilterParams) ([]entity.Employee, int64, error) {
	return f.employees, int64(len(f.employees)), nil
}
func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]entity.Employee, error) {
	return f.employees, f.listErr
}
func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeAttendanceRepo struct {
	rows   []entity.Attendance
	perErr map[uuid.UUID]error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *entity.Attendance) error { return nil }
func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) ListByEmployeeBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Attendance, error) {
	if err := f.perErr[employeeID]; err != nil {
		return nil, err
	}
	var out []entity.Attendance
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]entity.Attendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, a *entity.Attendance) error { return nil }
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

type fakeAdvanceRepo struct {
	advances []entity.Advance
}

func (f *fakeAdvanceRepo) Create(ctx context.Context, a *entity.Advance) error { return nil }
func (f *fakeAdvanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Advance, error) {
	return nil, nil
}
func (f *fakeAdvanceRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID, onlyUndeducted bool) ([]entity.Advance, error) {
	return nil, nil
}
func (f *fakeAdvanceRepo) ListUndeductedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Advance, error) {
	var out []entity.Advance
	for _, a := range f.advances {
		if a.EmployeeID == employeeID && !a.IsDeducted && !a.CreatedAt.Before(start) && !a.CreatedAt.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAdvanceRepo) ListDeductedBetween(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]entity.Advance, error) {
	var out []entity.Advance
	for _, a := range f.advances {
		if a.EmployeeID == employeeID && a.IsDeducted && !a.CreatedAt.Before(start) && !a.CreatedAt.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAdvanceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeSalaryRepo struct {
	salaries    []entity.Salary
	deductedIDs []uuid.UUID
	createCalls int
}

func (f *fakeSalaryRepo) CreateWithDeductions(ctx context.Context, salary *entity.Salary, advanceIDs []uuid.UUID, deductedAt time.Time) error {
	f.createCalls++
	if salary.ID == uuid.Nil {
		salary.ID = uuid.New()
	}
	f.salaries = append(f.salaries, *salary)
	f.deductedIDs = append(f.deductedIDs, advanceIDs...)
	return nil
}
func (f *fakeSalaryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error) {
	for i := range f.salaries {
		if f.salaries[i].ID == id {
			return &f.salaries[i], nil
		}
	}
	return nil, nil
}
func (f *fakeSalaryRepo) GetByPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (*entity.Salary, error) {
	for i := range f.salaries {
		s := &f.salaries[i]
		if s.EmployeeID == employeeID && s.Month == month && s.Year == year {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSalaryRepo) List(ctx context.Context, params *repository.SalaryFilterParams) ([]entity.Salary, int64, error) {
	return f.salaries, int64(len(f.salaries)), nil
}
func (f *fakeSalaryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SalaryStatus) error {
	for i := range f.salaries {
		if f.salaries[i].ID == id {
			f.salaries[i].Status = status
		}
	}
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func markDays(rows *[]entity.Attendance, employeeID uuid.UUID, year int, month time.Month, status enum.AttendanceStatus, days ...int) {
	for _, d := range days {
		*rows = append(*rows, entity.Attendance{
			EmployeeID: employeeID,
			Date:       day(year, month, d),
			Status:     status,
		})
	}
}

func newPayrollFixture() (*PayrollService, *fakeEmployeeRepo, *fakeAttendanceRepo, *fakeAdvanceRepo, *fakeSalaryRepo) {
	employees := &fakeEmployeeRepo{}
	attendance := &fakeAttendanceRepo{perErr: map[uuid.UUID]error{}}
	advances := &fakeAdvanceRepo{}
	salaries := &fakeSalaryRepo{}
	svc := NewPayrollService(employees, attendance, advances, salaries)
	return svc, employees, attendance, advances, salaries
}

func TestGeneratePayroll_ProRataWithHalfDays(t *testing.T) {
	svc, employees, attendance, _, salaries := newPayrollFixture()

	empID := uuid.New()
	employees.employees = []entity.Employee{{ID: empID, Name: "Ramesh", BasicSalary: 3000}}

	// June has 30 days: 20 present plus 4 half days is 22 paid days.
	present := make([]int, 0, 20)
	for d := 1; d <= 20; d++ {
		present = append(present, d)
	}
	markDays(&attendance.rows, empID, 2025, time.June, enum.AttendancePresent, present...)
	markDays(&attendance.rows, empID, 2025, time.June, enum.AttendanceHalfDay, 21, 22, 23, 24)
	markDays(&attendance.rows, empID, 2025, time.June, enum.AttendanceAbsent, 25, 26)

	result, err := svc.GeneratePayroll(context.Background(), 6, 2025)
	require.NoError(t, err)
	require.Len(t, result.Processed, 1)
	assert.Zero(t, result.Skipped)
	assert.Empty(t, result.Failed)

	salary := result.Processed[0]
	assert.Equal(t, 20, salary.PresentDays)
	assert.Equal(t, 2, salary.AbsentDays)
	assert.Equal(t, 4, salary.HalfDays)
	assert.Equal(t, 30, salary.TotalWorkingDays)
	assert.InDelta(t, 2200.0, salary.CalculatedSalary, 1e-9)
	assert.InDelta(t, 2200.0, salary.NetSalary, 1e-9)
	assert.Equal(t, enum.SalaryPending, salary.Status)
	assert.Equal(t, 1, salaries.createCalls)
}

func TestGeneratePayroll_AdvanceDeductionClampsAtZero(t *testing.T) {
	svc, employees, attendance, advances, salaries := newPayrollFixture()

	empID := uuid.New()
	employees.employees = []entity.Employee{{ID: empID, Name: "Suresh", BasicSalary: 3000}}

	present := make([]int, 0, 20)
	for d := 1; d <= 20; d++ {
		present = append(present, d)
	}
	markDays(&attendance.rows, empID, 2025, time.June, enum.AttendancePresent, present...)
	markDays(&attendance.rows, empID, 2025, time.June, enum.AttendanceHalfDay, 21, 22, 23, 24)

	advanceID := uuid.New()
	advances.advances = []entity.Advance{
		{ID: advanceID, EmployeeID: empID, Amount: 2500, CreatedAt: day(2025, time.June, 10)},
		// Recorded outside the month: must not be touched, even when its
		// claimed date falls inside.
		{ID: uuid.New(), EmployeeID: empID, Amount: 999, Date: day(2025, time.June, 12), CreatedAt: day(2025, time.May, 10)},
		// Already deducted: must not be counted again.
		{ID: uuid.New(), EmployeeID: empID, Amount: 500, CreatedAt: day(2025, time.June, 5), IsDeducted: true},
	}

	result, err := svc.GeneratePayroll(context.Background(), 6, 2025)
	require.NoError(t, err)
	require.Len(t, result.Processed, 1)

	salary := result.Processed[0]
	assert.InDelta(t, 2200.0, salary.CalculatedSalary, 1e-9)
	assert.InDelta(t, 2500.0, salary.AdvanceDeductions, 1e-9)
	assert.Equal(t, 0.0, salary.NetSalary)

	// Only the in-window undeducted advance is marked.
	assert.Equal(t, []uuid.UUID{advanceID}, salaries.deductedIDs)
}

func TestGeneratePayroll_SkipsSettledPeriods(t *testing.T) {
	svc, employees, _, _, salaries := newPayrollFixture()

	empID := uuid.New()
	employees.employees = []entity.Employee{{ID: empID, Name: "Mahesh", BasicSalary: 4000}}
	salaries.salaries = []entity.Salary{{ID: uuid.New(), EmployeeID: empID, Month: 6, Year: 2025}}

	result, err := svc.GeneratePayroll(context.Background(), 6, 2025)
	require.NoError(t, err)
	assert.Empty(t, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.Zero(t, salaries.createCalls)
}

func TestGeneratePayroll_LeapFebruary(t *testing.T) {
	svc, employees, attendance, _, _ := newPayrollFixture()

	empID := uuid.New()
	employees.employees = []entity.Employee{{ID: empID, Name: "Dinesh", BasicSalary: 2900}}
	markDays(&attendance.rows, empID, 2024, time.February, enum.AttendancePresent, 1, 2, 3)

	result, err := svc.GeneratePayroll(context.Background(), 2, 2024)
	require.NoError(t, err)
	require.Len(t, result.Processed, 1)

	salary := result.Processed[0]
	assert.Equal(t, 29, salary.TotalWorkingDays)
	assert.InDelta(t, 3*2900.0/29, salary.CalculatedSalary, 1e-9)
}

func TestGeneratePayroll_IsolatesPerEmployeeFailures(t *testing.T) {
	svc, employees, attendance, _, salaries := newPayrollFixture()

	goodID := uuid.New()
	badID := uuid.New()
	employees.employees = []entity.Employee{
		{ID: badID, Name: "Broken", BasicSalary: 3000},
		{ID: goodID, Name: "Fine", BasicSalary: 3000},
	}
	attendance.perErr[badID] = errors.New("connection reset")
	markDays(&attendance.rows, goodID, 2025, time.June, enum.AttendancePresent, 1, 2)

	result, err := svc.GeneratePayroll(context.Background(), 6, 2025)
	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, badID, result.Failed[0].EmployeeID)
	assert.Contains(t, result.Failed[0].Reason, "connection reset")
	require.Len(t, result.Processed, 1)
	assert.Equal(t, goodID, result.Processed[0].EmployeeID)
	assert.Equal(t, 1, salaries.createCalls)
}

func TestGeneratePayroll_RejectsInvalidPeriod(t *testing.T) {
	svc, _, _, _, _ := newPayrollFixture()

	_, err := svc.GeneratePayroll(context.Background(), 0, 2025)
	assert.Error(t, err)
	_, err = svc.GeneratePayroll(context.Background(), 13, 2025)
	assert.Error(t, err)
}

func TestGetSalary_IncludesDeductedAdvances(t *testing.T) {
	svc, _, _, advances, salaries := newPayrollFixture()

	empID := uuid.New()
	salaryID := uuid.New()
	salaries.salaries = []entity.Salary{{
		ID: salaryID, EmployeeID: empID, Month: 6, Year: 2025,
		AdvanceDeductions: 700, Status: enum.SalaryPending,
	}}

	deductedID := uuid.New()
	advances.advances = []entity.Advance{
		{ID: deductedID, EmployeeID: empID, Amount: 700, CreatedAt: day(2025, time.June, 10), IsDeducted: true},
		// Still open: not part of this salary's deductions.
		{ID: uuid.New(), EmployeeID: empID, Amount: 200, CreatedAt: day(2025, time.June, 20)},
		// Deducted in another period.
		{ID: uuid.New(), EmployeeID: empID, Amount: 300, CreatedAt: day(2025, time.May, 3), IsDeducted: true},
	}

	detail, err := svc.GetSalary(context.Background(), salaryID)
	require.NoError(t, err)
	assert.Equal(t, salaryID, detail.Salary.ID)
	require.Len(t, detail.Advances, 1)
	assert.Equal(t, deductedID, detail.Advances[0].ID)

	_, err = svc.GetSalary(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestMarkSalaryPaid(t *testing.T) {
	svc, _, _, _, salaries := newPayrollFixture()

	id := uuid.New()
	salaries.salaries = []entity.Salary{{ID: id, Status: enum.SalaryPending}}

	salary, err := svc.MarkSalaryPaid(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, enum.SalaryPaid, salary.Status)

	_, err = svc.MarkSalaryPaid(context.Background(), id)
	assert.Error(t, err)
}
