package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Download renders the invoice PDF and streams it as an attachment
func (h *InvoiceHandler) Download(c *gin.Context) {
	saleID, ok := h.saleID(c)
	if !ok {
		return
	}

	pdf, err := h.invoiceService.GeneratePDF(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.FileName+`"`)
	c.Data(200, "application/pdf", pdf.Data)
}

// Preview returns the invoice display model as JSON
func (h *InvoiceHandler) Preview(c *gin.Context) {
	saleID, ok := h.saleID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.BuildInvoice(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice built successfully", invoice)
}

// saleID accepts the sale ID from the path, the query string or a JSON
// body, in that order. Clients are inconsistent about where they put it.
func (h *InvoiceHandler) saleID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("sale_id")
	}
	if raw == "" {
		var req request.InvoiceRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			raw = req.SaleID
		}
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "A valid sale ID is required")
		return uuid.Nil, false
	}
	return id, true
}
