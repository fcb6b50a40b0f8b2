package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/sarisense/sarisense-api/pkg/pagination"
)

// CreditFilterParams holds filtering options for credit queries
type CreditFilterParams struct {
	Pagination *pagination.PaginationParams
	CustomerID *uuid.UUID
	Status     *enum.PaymentStatus
}

// CreditRepository defines the interface for utang (credit) data operations
type CreditRepository interface {
	Create(ctx context.Context, credit *entity.Credit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Credit, error)
	Update(ctx context.Context, credit *entity.Credit) error
	List(ctx context.Context, params *CreditFilterParams) ([]entity.Credit, int64, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Credit, error)
	// OutstandingBalance sums pending and overdue amounts for a customer, in centavos
	OutstandingBalance(ctx context.Context, customerID uuid.UUID) (int64, error)
	// SettleOutstanding marks every pending and overdue credit of the customer
	// as paid with the given paid date, returning how many rows changed
	SettleOutstanding(ctx context.Context, customerID uuid.UUID, paidDate time.Time) (int64, error)
	// MarkOverdue flips pending credits whose due date is before the cutoff to
	// overdue, returning how many rows changed
	MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error)
}
