package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/pkg/apperror"
	"github.com/sarisense/sarisense-api/pkg/pagination"
)

// CreditService handles utang bookkeeping outside of checkout
type CreditService struct {
	creditRepo   repository.CreditRepository
	customerRepo repository.CustomerRepository
}

// NewCreditService creates a new credit service
func NewCreditService(creditRepo repository.CreditRepository, customerRepo repository.CustomerRepository) *CreditService {
	return &CreditService{
		creditRepo:   creditRepo,
		customerRepo: customerRepo,
	}
}

// CreateCreditInput represents a manually recorded utang, for purchases made
// before the store started tracking them here.
type CreateCreditInput struct {
	CustomerID uuid.UUID
	Amount     float64 // pesos
	DueDate    *time.Time
	Notes      *string
}

// CreateCredit records a standalone utang obligation
func (s *CreditService) CreateCredit(ctx context.Context, input *CreateCreditInput) (*entity.Credit, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Credit amount must be positive")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	credit := &entity.Credit{
		CustomerID: input.CustomerID,
		Amount:     centavos(input.Amount),
		Status:     enum.PaymentStatusPending,
		DueDate:    input.DueDate,
		Notes:      input.Notes,
	}
	if err := s.creditRepo.Create(ctx, credit); err != nil {
		return nil, err
	}
	return credit, nil
}

// ListCredits returns utang records across customers, filterable by status
func (s *CreditService) ListCredits(ctx context.Context, params *repository.CreditFilterParams) (*pagination.PaginatedResult[entity.Credit], error) {
	credits, total, err := s.creditRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(credits, pag), nil
}

// ListCustomerCredits returns a customer's full utang history, newest first
func (s *CreditService) ListCustomerCredits(ctx context.Context, customerID uuid.UUID) ([]entity.Credit, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.creditRepo.ListByCustomer(ctx, customerID)
}

// PaymentResult reports how many obligations one batch payment settled
type PaymentResult struct {
	CreditsSettled int64 `json:"credits_settled"`
}

// RecordPayment marks every outstanding credit of the customer as paid.
// Partial payments are not tracked per obligation; settling wipes the slate.
func (s *CreditService) RecordPayment(ctx context.Context, customerID uuid.UUID) (*PaymentResult, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	settled, err := s.creditRepo.SettleOutstanding(ctx, customerID, time.Now())
	if err != nil {
		return nil, err
	}
	if settled == 0 {
		return nil, apperror.NewBadRequestError("Customer has no outstanding utang")
	}

	return &PaymentResult{CreditsSettled: settled}, nil
}

// CancelCredit voids an obligation that was recorded in error. Paid and
// already-cancelled credits cannot be cancelled.
func (s *CreditService) CancelCredit(ctx context.Context, id uuid.UUID) (*entity.Credit, error) {
	credit, err := s.creditRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, apperror.NewNotFoundError("Credit")
	}

	if !credit.Status.CanTransitionTo(enum.PaymentStatusCancelled) {
		return nil, apperror.NewBadRequestError("Credit is already settled or cancelled")
	}

	credit.Status = enum.PaymentStatusCancelled
	if err := s.creditRepo.Update(ctx, credit); err != nil {
		return nil, err
	}
	return credit, nil
}

// OverdueSweepResult reports how many credits a sweep flipped to overdue
type OverdueSweepResult struct {
	MarkedOverdue int64 `json:"marked_overdue"`
}

// MarkOverdue sweeps pending credits past their due date into overdue status
func (s *CreditService) MarkOverdue(ctx context.Context) (*OverdueSweepResult, error) {
	marked, err := s.creditRepo.MarkOverdue(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &OverdueSweepResult{MarkedOverdue: marked}, nil
}
