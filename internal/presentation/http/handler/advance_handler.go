package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// AdvanceHandler handles cash advance HTTP requests
type AdvanceHandler struct {
	advanceService *service.AdvanceService
}

// NewAdvanceHandler creates a new advance handler
func NewAdvanceHandler(advanceService *service.AdvanceService) *AdvanceHandler {
	return &AdvanceHandler{advanceService: advanceService}
}

// Create handles recording a cash advance
func (h *AdvanceHandler) Create(c *gin.Context) {
	var req request.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	date := time.Now()
	if req.Date != "" {
		if d, ok := parseDate(req.Date); ok {
			date = d
		}
	}

	advance, err := h.advanceService.CreateAdvance(c.Request.Context(), &service.CreateAdvanceInput{
		EmployeeID: employeeID,
		Amount:     req.Amount,
		Date:       date,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Advance recorded successfully", advance)
}

// ListByEmployee handles listing an employee's advances
func (h *AdvanceHandler) ListByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	onlyUndeducted := c.Query("undeducted") == "true"
	advances, err := h.advanceService.ListAdvances(c.Request.Context(), employeeID, onlyUndeducted)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Advances retrieved successfully", advances)
}

// Delete handles removing an advance that has not been deducted yet
func (h *AdvanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid advance ID")
		return
	}

	if err := h.advanceService.DeleteAdvance(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Advance deleted successfully", nil)
}
