package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/pkg/apperror"
	"github.com/sarisense/sarisense-api/pkg/pagination"
)

// CustomerService handles credit customer records
type CustomerService struct {
	customerRepo repository.CustomerRepository
	creditRepo   repository.CreditRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, creditRepo repository.CreditRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		creditRepo:   creditRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name        string
	Phone       *string
	Address     *string
	CreditLimit float64 // pesos
}

// CreateCustomer registers a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.CreditLimit < 0 {
		return nil, apperror.NewBadRequestError("Credit limit cannot be negative")
	}

	customer := &entity.Customer{
		Name:        input.Name,
		Phone:       input.Phone,
		Address:     input.Address,
		CreditLimit: centavos(input.CreditLimit),
		IsActive:    true,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// CustomerWithBalance pairs a customer with their live outstanding utang
type CustomerWithBalance struct {
	Customer *entity.Customer `json:"customer"`
	Balance  float64          `json:"outstanding_balance"`
}

// GetCustomer retrieves a customer together with their outstanding balance
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerWithBalance, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	balance, err := s.creditRepo.OutstandingBalance(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CustomerWithBalance{
		Customer: customer,
		Balance:  float64(balance) / 100,
	}, nil
}

// ListCustomers lists customers with optional name or phone search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	CustomerID  uuid.UUID
	Name        *string
	Phone       *string
	Address     *string
	CreditLimit *float64
	IsActive    *bool
}

// UpdateCustomer updates a customer record
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.CreditLimit != nil {
		if *input.CreditLimit < 0 {
			return nil, apperror.NewBadRequestError("Credit limit cannot be negative")
		}
		customer.CreditLimit = centavos(*input.CreditLimit)
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer soft-deletes a customer. Their utang history stays on the
// books for risk reports.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}
