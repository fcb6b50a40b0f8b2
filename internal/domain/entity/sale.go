package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents one checkout transaction. Sales are append-only ledger
// entries and are never updated after creation.
type Sale struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo       string               `gorm:"size:20;uniqueIndex" json:"receipt_no"`
	CashierID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CustomerID      *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	TotalAmount     int64                `gorm:"default:0" json:"-"` // Stored in centavos
	AmountPaid      int64                `gorm:"default:0" json:"-"` // Stored in centavos
	ChangeAmount    int64                `gorm:"default:0" json:"-"` // Stored in centavos
	CreditAmount    int64                `gorm:"default:0" json:"-"` // Stored in centavos
	TransactionType enum.TransactionType `gorm:"default:0" json:"transaction_type"`
	Notes           *string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time            `gorm:"index" json:"created_at"`

	// Relationships
	Cashier  User       `gorm:"foreignKey:CashierID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount  float64 `json:"total_amount"`
		AmountPaid   float64 `json:"amount_paid"`
		ChangeAmount float64 `json:"change_amount"`
		CreditAmount float64 `json:"credit_amount"`
	}{
		Alias:        Alias(s),
		TotalAmount:  float64(s.TotalAmount) / 100,
		AmountPaid:   float64(s.AmountPaid) / 100,
		ChangeAmount: float64(s.ChangeAmount) / 100,
		CreditAmount: float64(s.CreditAmount) / 100,
	})
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

// SaleItem represents a line item in a sale. Each item belongs to exactly
// one sale.
type SaleItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID     uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  int64     `gorm:"not null" json:"-"` // Stored in centavos
	TotalPrice int64     `gorm:"not null" json:"-"` // Stored in centavos

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(si),
		UnitPrice:  float64(si.UnitPrice) / 100,
		TotalPrice: float64(si.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
