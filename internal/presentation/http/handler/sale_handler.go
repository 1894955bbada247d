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

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles recording an itemised sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSaleInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           req.Items,
		Discount:        req.Discount,
		Tax:             req.Tax,
		PaymentMethod:   req.PaymentMethod,
	}
	if req.SaleDate != "" {
		if d, ok := parseDate(req.SaleDate); ok {
			input.SaleDate = &d
		}
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale recorded successfully", sale)
}

// CreateSimple handles recording a single-amount sale
func (h *SaleHandler) CreateSimple(c *gin.Context) {
	var req request.CreateSimpleSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSimpleSaleInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}
	if req.SaleDate != "" {
		if d, ok := parseDate(req.SaleDate); ok {
			input.SaleDate = &d
		}
	}

	sale, err := h.saleService.CreateSimpleSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale recorded successfully", sale)
}

// List handles listing itemised sales
func (h *SaleHandler) List(c *gin.Context) {
	params := saleFilters(c)
	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// ListSimple handles listing simple sales
func (h *SaleHandler) ListSimple(c *gin.Context) {
	params := saleFilters(c)
	result, err := h.saleService.ListSimpleSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles retrieving an itemised sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Delete handles removing an itemised sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale deleted successfully", nil)
}

// DeleteSimple handles removing a simple sale
func (h *SaleHandler) DeleteSimple(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSimpleSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale deleted successfully", nil)
}

func saleFilters(c *gin.Context) *repository.SaleFilterParams {
	params := &repository.SaleFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
	}
	if raw := c.Query("start_date"); raw != "" {
		if d, ok := parseDate(raw); ok {
			params.StartDate = &d
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if d, ok := parseDate(raw); ok {
			// Include the whole end day.
			end := d.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &end
		}
	}
	return params
}
