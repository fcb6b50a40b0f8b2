package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Credit represents a single utang obligation owed by a customer. Status is
// the only mutable field; amounts never change after creation.
type Credit struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	SaleID     *uuid.UUID         `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	Amount     int64              `gorm:"not null" json:"-"` // Stored in centavos
	Status     enum.PaymentStatus `gorm:"default:0;index" json:"status"`
	DueDate    *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	PaidDate   *time.Time         `gorm:"type:date" json:"paid_date,omitempty"`
	Notes      *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Sale     *Sale    `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (c Credit) MarshalJSON() ([]byte, error) {
	type Alias Credit
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(c),
		Amount: float64(c.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new credit
func (c *Credit) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Credit model
func (Credit) TableName() string {
	return "credits"
}

// IsOutstanding reports whether the obligation still counts against the
// customer's balance.
func (c *Credit) IsOutstanding() bool {
	return c.Status == enum.PaymentStatusPending || c.Status == enum.PaymentStatusOverdue
}
