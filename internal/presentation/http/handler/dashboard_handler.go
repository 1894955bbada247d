package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the admin landing page summary
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles the dashboard summary request
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
