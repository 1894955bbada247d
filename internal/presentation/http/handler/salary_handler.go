package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/domain/enum"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// SalaryHandler handles payroll HTTP requests
type SalaryHandler struct {
	payrollService *service.PayrollService
}

// NewSalaryHandler creates a new salary handler
func NewSalaryHandler(payrollService *service.PayrollService) *SalaryHandler {
	return &SalaryHandler{payrollService: payrollService}
}

// Generate handles running payroll for a month
func (h *SalaryHandler) Generate(c *gin.Context) {
	var req request.GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.payrollService.GeneratePayroll(c.Request.Context(), req.Month, req.Year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payroll generated", result)
}

// List handles listing salary records
func (h *SalaryHandler) List(c *gin.Context) {
	params := &repository.SalaryFilterParams{Pagination: pageParams(c)}

	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid employee ID")
			return
		}
		params.EmployeeID = &id
	}
	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid month")
			return
		}
		params.Month = &month
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid year")
			return
		}
		params.Year = &year
	}
	if raw := c.Query("status"); raw != "" {
		var status enum.SalaryStatus
		switch raw {
		case "pending":
			status = enum.SalaryPending
		case "paid":
			status = enum.SalaryPaid
		default:
			response.BadRequest(c, "Status must be pending or paid")
			return
		}
		params.Status = &status
	}

	result, err := h.payrollService.ListSalaries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Salaries retrieved successfully", result)
}

// Get handles retrieving one salary record
func (h *SalaryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid salary ID")
		return
	}

	detail, err := h.payrollService.GetSalary(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Salary retrieved successfully", detail)
}

// MarkPaid handles settling a pending salary
func (h *SalaryHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid salary ID")
		return
	}

	salary, err := h.payrollService.MarkSalaryPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Salary marked paid", salary)
}
