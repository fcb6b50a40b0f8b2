package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         string     `json:"name" binding:"required,min=2,max=255"`
	Description  *string    `json:"description"`
	UnitPrice    float64    `json:"unit_price" binding:"min=0"`
	CostPrice    float64    `json:"cost_price" binding:"min=0"`
	CurrentStock int        `json:"current_stock" binding:"min=0"`
	MinimumStock int        `json:"minimum_stock" binding:"min=0"`
	MaximumStock int        `json:"maximum_stock" binding:"min=0"`
	Barcode      *string    `json:"barcode" binding:"omitempty,max=100"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID   *uuid.UUID `json:"category_id"`
	Name         *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string    `json:"description"`
	UnitPrice    *float64   `json:"unit_price" binding:"omitempty,min=0"`
	CostPrice    *float64   `json:"cost_price" binding:"omitempty,min=0"`
	MinimumStock *int       `json:"minimum_stock" binding:"omitempty,min=0"`
	MaximumStock *int       `json:"maximum_stock" binding:"omitempty,min=0"`
	Barcode      *string    `json:"barcode" binding:"omitempty,max=100"`
	IsActive     *bool      `json:"is_active"`
}

// RestockRequest represents a stock delivery
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	ActiveOnly bool   `form:"active_only"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description"`
}

// ImportProductRowRequest is one row of a bulk catalog import
type ImportProductRowRequest struct {
	Name         string  `json:"name" binding:"required"`
	UnitPrice    float64 `json:"unit_price" binding:"min=0"`
	CostPrice    float64 `json:"cost_price" binding:"min=0"`
	CurrentStock int     `json:"current_stock" binding:"min=0"`
	MinimumStock int     `json:"minimum_stock" binding:"min=0"`
	MaximumStock int     `json:"maximum_stock" binding:"min=0"`
	Barcode      string  `json:"barcode"`
	CategoryName string  `json:"category_name"`
}

// ImportProductsRequest represents a bulk catalog import
type ImportProductsRequest struct {
	Rows []ImportProductRowRequest `json:"rows" binding:"required,min=1,dive"`
}
