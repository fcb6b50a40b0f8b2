package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings represents store-wide application settings. A single row is
// created on first boot and updated in place.
type StoreSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StoreName    string `gorm:"size:255;default:'Sari-Sari Store'" json:"store_name"`
	CurrencyCode string `gorm:"size:10;default:'PHP'" json:"currency_code"`
	// Timezone used for calendar-day bucketing in analytics. Changing it
	// changes which bucket a sale falls into, so it is an explicit setting
	// rather than the server's local zone.
	Timezone       string `gorm:"size:50;default:'UTC'" json:"timezone"`
	LowStockAlerts bool   `gorm:"default:true" json:"low_stock_alerts"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
