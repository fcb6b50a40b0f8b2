package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a store customer who may carry utang (informal credit)
type Customer struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	CreditLimit int64          `gorm:"default:0" json:"-"` // Stored in centavos
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales   []Sale   `gorm:"foreignKey:CustomerID" json:"-"`
	Credits []Credit `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		CreditLimit float64 `json:"credit_limit"`
	}{
		Alias:       Alias(c),
		CreditLimit: float64(c.CreditLimit) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
