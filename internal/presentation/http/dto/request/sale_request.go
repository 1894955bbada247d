package request

import "github.com/sweetline/mithas-api/internal/application/service"

// CreateSaleRequest represents an itemised sale. Items, discount and tax
// are loosely typed on purpose: clients mix numbers and numeric strings,
// and malformed items are dropped rather than rejected.
type CreateSaleRequest struct {
	CustomerName    string                   `json:"customer_name" binding:"required"`
	CustomerPhone   string                   `json:"customer_phone"`
	CustomerAddress string                   `json:"customer_address"`
	Items           []service.SaleItemInput  `json:"items"`
	Discount        any                      `json:"discount"`
	Tax             any                      `json:"tax"`
	PaymentMethod   string                   `json:"payment_method"`
	SaleDate        string                   `json:"sale_date" binding:"omitempty,datetime=2006-01-02"`
}

// CreateSimpleSaleRequest represents a single-amount sale
type CreateSimpleSaleRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone string  `json:"customer_phone"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method"`
	SaleDate      string  `json:"sale_date" binding:"omitempty,datetime=2006-01-02"`
}

// InvoiceRequest carries a sale ID in the body, for clients that POST it
// instead of using the path or query string
type InvoiceRequest struct {
	SaleID string `json:"sale_id"`
}
