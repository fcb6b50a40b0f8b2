package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/internal/events"
	"github.com/sarisense/sarisense-api/pkg/apperror"
	"github.com/sarisense/sarisense-api/pkg/pagination"
	"github.com/sarisense/sarisense-api/pkg/utils"
)

// Credit sales fall due one week after checkout
const creditTermDays = 7

// SaleService handles checkout and the sales ledger
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	creditRepo   repository.CreditRepository
	bus          *events.Bus
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	creditRepo repository.CreditRepository,
	bus *events.Bus,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		creditRepo:   creditRepo,
		bus:          bus,
	}
}

// CartItemInput is one line of a checkout request
type CartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput represents one checkout request
type CheckoutInput struct {
	CashierID    uuid.UUID
	CustomerID   *uuid.UUID
	Items        []CartItemInput
	AmountPaid   float64 // pesos
	CreditAmount float64 // pesos
	Notes        *string
}

// CheckoutOutput is the committed sale plus any stock warnings
type CheckoutOutput struct {
	Sale     *entity.Sale `json:"sale"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Checkout validates the cart, prices it from the live catalog, commits the
// sale with its line items, adjusts stock, records utang when part of the
// total is on credit, and finally announces the sale on the event bus.
func (s *SaleService) Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}
	if input.AmountPaid < 0 || input.CreditAmount < 0 {
		return nil, apperror.NewBadRequestError("Payment amounts cannot be negative")
	}

	quantities := make(map[uuid.UUID]int, len(input.Items))
	order := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantities must be positive")
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	var totalAmount int64
	items := make([]entity.SaleItem, 0, len(order))
	for _, id := range order {
		product, ok := productByID[id]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}
		if !product.IsActive {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("%s is no longer sold", product.Name))
		}

		qty := quantities[id]
		lineTotal := product.UnitPrice * int64(qty)
		items = append(items, entity.SaleItem{
			ProductID:  id,
			Quantity:   qty,
			UnitPrice:  product.UnitPrice,
			TotalPrice: lineTotal,
		})
		totalAmount += lineTotal
	}

	amountPaid := centavos(input.AmountPaid)
	creditAmount := centavos(input.CreditAmount)

	if amountPaid+creditAmount < totalAmount {
		return nil, apperror.NewBadRequestError("Payment does not cover the total")
	}
	changeAmount := amountPaid + creditAmount - totalAmount

	// Utang needs a named customer with room under their credit limit
	var customer *entity.Customer
	if creditAmount > 0 {
		if input.CustomerID == nil {
			return nil, apperror.NewBadRequestError("Credit sales require a customer")
		}
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if !customer.IsActive {
			return nil, apperror.NewBadRequestError("Customer account is inactive")
		}

		if customer.CreditLimit > 0 {
			outstanding, err := s.creditRepo.OutstandingBalance(ctx, customer.ID)
			if err != nil {
				return nil, err
			}
			if outstanding+creditAmount > customer.CreditLimit {
				return nil, apperror.NewBadRequestError(fmt.Sprintf(
					"Credit limit exceeded: outstanding ₱%.2f plus ₱%.2f is over the ₱%.2f limit",
					float64(outstanding)/100, float64(creditAmount)/100, float64(customer.CreditLimit)/100))
			}
		}
	} else if input.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	clampedIDs, err := s.productRepo.DecrementStockClamped(ctx, quantities)
	if err != nil {
		return nil, err
	}
	var warnings []string
	for _, id := range clampedIDs {
		if p, ok := productByID[id]; ok {
			warnings = append(warnings, fmt.Sprintf("Stock for %s went below zero and was clamped to 0; recorded quantity may exceed what was on hand", p.Name))
		}
	}

	sale := &entity.Sale{
		ReceiptNo:       utils.GenerateReceiptNo(),
		CashierID:       input.CashierID,
		CustomerID:      input.CustomerID,
		TotalAmount:     totalAmount,
		AmountPaid:      amountPaid,
		ChangeAmount:    changeAmount,
		CreditAmount:    creditAmount,
		TransactionType: enum.TransactionTypeSale,
		Notes:           input.Notes,
	}

	var credit *entity.Credit
	if creditAmount > 0 {
		dueDate := time.Now().AddDate(0, 0, creditTermDays)
		credit = &entity.Credit{
			CustomerID: *input.CustomerID,
			Amount:     creditAmount,
			Status:     enum.PaymentStatusPending,
			DueDate:    &dueDate,
		}
	}

	// The sale, its items and the utang row commit together. If that fails
	// the decrement above must be unwound or the catalog loses stock with no
	// sale on the ledger.
	if err := s.saleRepo.CreateWithItems(ctx, sale, items, credit); err != nil {
		s.restoreStock(ctx, quantities, clampedIDs)
		return nil, err
	}

	s.bus.Publish(events.SaleCreated{
		SaleID:      sale.ID,
		CustomerID:  sale.CustomerID,
		TotalAmount: sale.TotalAmount,
		CreatedAt:   sale.CreatedAt,
	})

	committed, err := s.saleRepo.GetWithItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	if committed != nil {
		sale = committed
	}

	return &CheckoutOutput{Sale: sale, Warnings: warnings}, nil
}

// restoreStock puts decremented quantities back after a failed sale insert.
// Clamped products are skipped: the amount they actually lost is unknown,
// and the next restock corrects the drift.
func (s *SaleService) restoreStock(ctx context.Context, quantities map[uuid.UUID]int, clampedIDs []uuid.UUID) {
	clamped := make(map[uuid.UUID]bool, len(clampedIDs))
	for _, id := range clampedIDs {
		clamped[id] = true
	}
	for id, qty := range quantities {
		if clamped[id] {
			continue
		}
		if err := s.productRepo.IncrementStock(ctx, id, qty); err != nil {
			log.Printf("stock restore failed for product %s: %v", id, err)
		}
	}
}

// GetSale retrieves a sale with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists ledger entries newest first
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
