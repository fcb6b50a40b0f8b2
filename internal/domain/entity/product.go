package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable catalog item with price and stock levels
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	UnitPrice    int64          `gorm:"default:0" json:"-"` // Stored in centavos
	CostPrice    int64          `gorm:"default:0" json:"-"` // Stored in centavos
	CurrentStock int            `gorm:"default:0" json:"current_stock"`
	MinimumStock int            `gorm:"default:0" json:"minimum_stock"`
	MaximumStock int            `gorm:"default:0" json:"maximum_stock"`
	Barcode      *string        `gorm:"size:100;index" json:"barcode,omitempty"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its reorder point
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}

// GetUnitPriceDecimal returns the unit price in pesos (for display)
func (p *Product) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// GetCostPriceDecimal returns the cost price in pesos (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// SetUnitPriceFromDecimal sets the unit price from a peso value
func (p *Product) SetUnitPriceFromDecimal(price float64) {
	p.UnitPrice = int64(math.Round(price * 100))
}

// SetCostPriceFromDecimal sets the cost price from a peso value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = int64(math.Round(price * 100))
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		CostPrice float64 `json:"cost_price"`
		LowStock  bool    `json:"low_stock"`
	}{
		Alias:     Alias(p),
		UnitPrice: p.GetUnitPriceDecimal(),
		CostPrice: p.GetCostPriceDecimal(),
		LowStock:  p.IsLowStock(),
	})
}

// Category represents a product category
type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;unique;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
