package entity

import "time"

// Product is a catalog entry persisted in a flat JSON snapshot, not in the
// database. Sales copy the name and price at creation time, so a product
// can be edited or removed without touching past records.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockItem is a stock-level entry persisted in a flat JSON snapshot.
type StockItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
