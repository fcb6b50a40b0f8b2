package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/pkg/apperror"
	"github.com/sarisense/sarisense-api/pkg/pagination"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	CategoryID   *uuid.UUID
	Name         string
	Description  *string
	UnitPrice    float64 // pesos
	CostPrice    float64 // pesos
	CurrentStock int
	MinimumStock int
	MaximumStock int
	Barcode      *string
}

// CreateProduct creates a new catalog item
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.UnitPrice < 0 || input.CostPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}
	if input.CurrentStock < 0 || input.MinimumStock < 0 {
		return nil, apperror.NewBadRequestError("Stock levels cannot be negative")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		existing, err := s.productRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Barcode already in use")
		}
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		MaximumStock: input.MaximumStock,
		Barcode:      input.Barcode,
		IsActive:     true,
	}
	product.SetUnitPriceFromDecimal(input.UnitPrice)
	product.SetCostPriceFromDecimal(input.CostPrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode retrieves a product by barcode for POS scanning
func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ProductID    uuid.UUID
	CategoryID   *uuid.UUID
	Name         *string
	Description  *string
	UnitPrice    *float64
	CostPrice    *float64
	MinimumStock *int
	MaximumStock *int
	Barcode      *string
	IsActive     *bool
}

// UpdateProduct updates a product. Stock is adjusted through Restock and
// checkout, never through this path.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Barcode != nil && (product.Barcode == nil || *input.Barcode != *product.Barcode) {
		existing, err := s.productRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Barcode already in use")
		}
		product.Barcode = input.Barcode
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.SetUnitPriceFromDecimal(*input.UnitPrice)
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices cannot be negative")
		}
		product.SetCostPriceFromDecimal(*input.CostPrice)
	}
	if input.MinimumStock != nil {
		product.MinimumStock = *input.MinimumStock
	}
	if input.MaximumStock != nil {
		product.MaximumStock = *input.MaximumStock
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct soft-deletes a product. Past sales keep their line items.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// RestockProduct adds delivered stock to a product
func (s *ProductService) RestockProduct(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Restock quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.IncrementStock(ctx, id, quantity); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, id)
}

// GetLowStockProducts returns products at or below their reorder point
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// ImportProductRow represents a single row from a catalog import file
type ImportProductRow struct {
	Name         string
	UnitPrice    float64
	CostPrice    float64
	CurrentStock int
	MinimumStock int
	MaximumStock int
	Barcode      string
	CategoryName string
}

// ImportResult contains the result of a catalog import operation
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes an error for a specific row during import
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportProducts validates and bulk-creates products from parsed import rows.
// Categories are matched by name and created when missing.
func (s *ProductService) ImportProducts(ctx context.Context, rows []ImportProductRow) (*ImportResult, error) {
	result := &ImportResult{TotalRows: len(rows)}
	var rowErrors []ImportRowError

	categoryMap := make(map[string]*uuid.UUID)
	categories, _, err := s.categoryRepo.List(ctx, &pagination.PaginationParams{Page: 1, PerPage: 1000}, "")
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categoryMap[strings.ToLower(categories[i].Name)] = &categories[i].ID
	}

	// Track barcodes seen in this batch to detect duplicates within the file
	seenBarcodes := make(map[string]int) // barcode -> row number

	var validProducts []entity.Product

	for i, row := range rows {
		rowNum := i + 2 // +2 because row 1 is the header, data starts at row 2

		if strings.TrimSpace(row.Name) == "" {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "name", Message: "Name is required"})
			continue
		}
		if row.UnitPrice < 0 || row.CostPrice < 0 {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "unit_price", Message: "Prices cannot be negative"})
			continue
		}

		barcode := strings.TrimSpace(row.Barcode)
		if barcode != "" {
			if prevRow, exists := seenBarcodes[barcode]; exists {
				rowErrors = append(rowErrors, ImportRowError{
					Row:     rowNum,
					Field:   "barcode",
					Message: fmt.Sprintf("Duplicate barcode '%s' (same as row %d)", barcode, prevRow),
				})
				continue
			}
			existing, err := s.productRepo.GetByBarcode(ctx, barcode)
			if err != nil {
				rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "barcode", Message: "Error checking barcode: " + err.Error()})
				continue
			}
			if existing != nil {
				rowErrors = append(rowErrors, ImportRowError{
					Row:     rowNum,
					Field:   "barcode",
					Message: fmt.Sprintf("Barcode '%s' already exists", barcode),
				})
				continue
			}
			seenBarcodes[barcode] = rowNum
		}

		var categoryID *uuid.UUID
		if name := strings.TrimSpace(row.CategoryName); name != "" {
			key := strings.ToLower(name)
			if id, ok := categoryMap[key]; ok {
				categoryID = id
			} else {
				category := &entity.Category{Name: name}
				if err := s.categoryRepo.Create(ctx, category); err != nil {
					rowErrors = append(rowErrors, ImportRowError{
						Row:     rowNum,
						Field:   "category",
						Message: fmt.Sprintf("Failed to create category '%s': %s", name, err.Error()),
					})
					continue
				}
				id := category.ID
				categoryMap[key] = &id
				categoryID = &id
			}
		}

		product := entity.Product{
			CategoryID:   categoryID,
			Name:         strings.TrimSpace(row.Name),
			CurrentStock: row.CurrentStock,
			MinimumStock: row.MinimumStock,
			MaximumStock: row.MaximumStock,
			IsActive:     true,
		}
		product.SetUnitPriceFromDecimal(row.UnitPrice)
		product.SetCostPriceFromDecimal(row.CostPrice)
		if barcode != "" {
			b := barcode
			product.Barcode = &b
		}

		validProducts = append(validProducts, product)
	}

	if len(validProducts) > 0 {
		if err := s.productRepo.CreateBatch(ctx, validProducts); err != nil {
			return nil, apperror.NewAppError(500, "Failed to import products: "+err.Error())
		}
	}

	result.Successful = len(validProducts)
	result.Failed = len(rowErrors)
	result.Errors = rowErrors

	return result, nil
}
