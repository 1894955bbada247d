package request

// CreateProductRequest represents a create catalog product request
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Price    float64 `json:"price" binding:"gte=0"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"`
}

// UpsertStockRequest represents a create or replace stock item request
type UpsertStockRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit"`
}

// AdjustStockRequest represents a signed stock quantity adjustment
type AdjustStockRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}
