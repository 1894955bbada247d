package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Upsert handles creating or replacing a stock item
func (h *StockHandler) Upsert(c *gin.Context) {
	var req request.UpsertStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.stockService.UpsertStock(c.Request.Context(), &service.UpsertStockInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock item saved successfully", item)
}

// List handles listing the stock ledger
func (h *StockHandler) List(c *gin.Context) {
	items, err := h.stockService.ListStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock retrieved successfully", items)
}

// Adjust handles applying a signed quantity delta to a stock item
func (h *StockHandler) Adjust(c *gin.Context) {
	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.stockService.AdjustStock(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock adjusted successfully", item)
}

// Delete handles removing a stock item
func (h *StockHandler) Delete(c *gin.Context) {
	if err := h.stockService.DeleteStock(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock item deleted successfully", nil)
}
