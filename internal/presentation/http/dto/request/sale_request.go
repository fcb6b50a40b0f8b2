package request

import "github.com/google/uuid"

// CartItemRequest is one line of a checkout request
type CartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest represents a checkout (sale creation) request
type CheckoutRequest struct {
	CustomerID   *uuid.UUID        `json:"customer_id"`
	Items        []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	AmountPaid   float64           `json:"amount_paid" binding:"min=0"`
	CreditAmount float64           `json:"credit_amount" binding:"min=0"`
	Notes        *string           `json:"notes"`
}

// SaleFilterRequest represents sale list filter parameters
type SaleFilterRequest struct {
	CustomerID string `form:"customer_id"`
	CashierID  string `form:"cashier_id"`
	From       string `form:"from"` // YYYY-MM-DD
	To         string `form:"to"`   // YYYY-MM-DD
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
