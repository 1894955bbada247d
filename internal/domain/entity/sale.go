package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is a multi-item sale. Product name and unit price are copied onto
// each item at creation time, so later catalog edits never change what a
// historical invoice shows.
type Sale struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName    string     `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone   string     `gorm:"size:50" json:"customer_phone,omitempty"`
	CustomerAddress string     `gorm:"type:text" json:"customer_address,omitempty"`
	SubTotal        float64    `gorm:"not null;default:0" json:"sub_total"`
	Discount        float64    `gorm:"not null;default:0" json:"discount"`
	Tax             float64    `gorm:"not null;default:0" json:"tax"`
	TotalAmount     float64    `gorm:"not null;default:0" json:"total_amount"`
	PaymentMethod   string     `gorm:"size:50" json:"payment_method"`
	SaleDate        time.Time  `gorm:"not null" json:"sale_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Items belong exclusively to this sale and have no independent lifecycle.
	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a multi-item sale. ProductID is the catalog key
// as a plain string, deliberately not a foreign key: the catalog lives in
// flat files and items must survive catalog deletions.
type SaleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   string    `gorm:"size:100;not null" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    float64   `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	LineTotal   float64   `gorm:"not null" json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// SimpleSale is a sale recorded as a single customer and amount, with no
// itemisation. Kept as its own table rather than a degenerate Sale so the
// two listings stay cheap to query separately.
type SimpleSale struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"size:50" json:"customer_phone,omitempty"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	SaleDate      time.Time `gorm:"not null" json:"sale_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new simple sale
func (s *SimpleSale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SimpleSale model
func (SimpleSale) TableName() string {
	return "simple_sales"
}
