package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles creating an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	joiningDate := time.Now()
	if req.JoiningDate != "" {
		if d, ok := parseDate(req.JoiningDate); ok {
			joiningDate = d
		}
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		Name:        req.Name,
		Role:        req.Role,
		JoiningDate: joiningDate,
		BasicSalary: req.BasicSalary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Employee created successfully", employee)
}

// List handles listing employees
func (h *EmployeeHandler) List(c *gin.Context) {
	params := &repository.EmployeeFilterParams{
		Pagination:      pageParams(c),
		Search:          c.Query("search"),
		IncludeInactive: c.Query("include_inactive") == "true",
	}

	result, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// Get handles retrieving a single employee
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee retrieved successfully", employee)
}

// Update handles a partial employee update
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateEmployeeInput{
		Name:        req.Name,
		Role:        req.Role,
		BasicSalary: req.BasicSalary,
		IsActive:    req.IsActive,
	}
	if req.JoiningDate != nil {
		if d, ok := parseDate(*req.JoiningDate); ok {
			input.JoiningDate = &d
		}
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles deactivating an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee deactivated successfully", nil)
}
