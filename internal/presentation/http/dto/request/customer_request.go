package request

import "time"

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address"`
	CreditLimit float64 `json:"credit_limit" binding:"min=0"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Phone       *string  `json:"phone" binding:"omitempty,max=50"`
	Address     *string  `json:"address"`
	CreditLimit *float64 `json:"credit_limit" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}

// CreateCreditRequest represents a manually recorded utang
type CreateCreditRequest struct {
	CustomerID string     `json:"customer_id" binding:"required,uuid"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	DueDate    *time.Time `json:"due_date"`
	Notes      *string    `json:"notes"`
}

// UpdateSettingsRequest represents a store settings update
type UpdateSettingsRequest struct {
	StoreName      *string `json:"store_name" binding:"omitempty,min=1,max=255"`
	CurrencyCode   *string `json:"currency_code" binding:"omitempty,min=3,max=10"`
	Timezone       *string `json:"timezone" binding:"omitempty,max=50"`
	LowStockAlerts *bool   `json:"low_stock_alerts"`
}
