package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/sarisense/sarisense-api/pkg/pagination"
)

// SaleRepository defines the interface for the append-only sales ledger
type SaleRepository interface {
	// CreateWithItems persists a sale, its line items and, when credit is not
	// nil, the backing utang row in one transaction. The credit's SaleID is
	// filled in from the committed sale.
	CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, credit *entity.Credit) error
	// GetWithItems retrieves a sale with items, products and customer preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination      *pagination.PaginationParams
	CustomerID      *uuid.UUID
	CashierID       *uuid.UUID
	TransactionType *enum.TransactionType
	From            *time.Time
	To              *time.Time
}
