package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditFixture() (*CreditService, *fakeCreditRepo, *fakeCustomerRepo) {
	creditRepo := &fakeCreditRepo{}
	customerRepo := &fakeCustomerRepo{}
	return NewCreditService(creditRepo, customerRepo), creditRepo, customerRepo
}

func TestCreateCredit(t *testing.T) {
	service, creditRepo, customerRepo := newCreditFixture()
	customerID := uuid.New()
	customerRepo.customer = &entity.Customer{ID: customerID, Name: "Ana Reyes", IsActive: true}

	credit, err := service.CreateCredit(context.Background(), &CreateCreditInput{
		CustomerID: customerID,
		Amount:     120.50,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12050), credit.Amount)
	assert.Equal(t, enum.PaymentStatusPending, credit.Status)
	assert.Nil(t, credit.SaleID)
	assert.Equal(t, credit, creditRepo.created)
}

func TestCreateCreditValidation(t *testing.T) {
	service, _, customerRepo := newCreditFixture()
	customerID := uuid.New()
	customerRepo.customer = &entity.Customer{ID: customerID, Name: "Ana Reyes", IsActive: true}

	_, err := service.CreateCredit(context.Background(), &CreateCreditInput{
		CustomerID: customerID,
		Amount:     0,
	})
	assert.Error(t, err)

	_, err = service.CreateCredit(context.Background(), &CreateCreditInput{
		CustomerID: uuid.New(), // unknown customer
		Amount:     50,
	})
	assert.Error(t, err)
}

func TestRecordPaymentSettlesEverything(t *testing.T) {
	service, creditRepo, customerRepo := newCreditFixture()
	customerID := uuid.New()
	customerRepo.customer = &entity.Customer{ID: customerID, Name: "Maria Santos", IsActive: true}
	creditRepo.settled = 3

	result, err := service.RecordPayment(context.Background(), customerID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.CreditsSettled)
}

func TestRecordPaymentWithNothingOwed(t *testing.T) {
	service, creditRepo, customerRepo := newCreditFixture()
	customerID := uuid.New()
	customerRepo.customer = &entity.Customer{ID: customerID, Name: "Maria Santos", IsActive: true}
	creditRepo.settled = 0

	_, err := service.RecordPayment(context.Background(), customerID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no outstanding utang")
}

func TestCancelCredit(t *testing.T) {
	service, creditRepo, _ := newCreditFixture()
	creditRepo.credit = &entity.Credit{
		ID:     uuid.New(),
		Amount: 5000,
		Status: enum.PaymentStatusPending,
	}

	credit, err := service.CancelCredit(context.Background(), creditRepo.credit.ID)

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusCancelled, credit.Status)
	assert.Equal(t, credit, creditRepo.updated)
}

func TestCancelCreditRejectsTerminalStates(t *testing.T) {
	for _, status := range []enum.PaymentStatus{enum.PaymentStatusPaid, enum.PaymentStatusCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			service, creditRepo, _ := newCreditFixture()
			creditRepo.credit = &entity.Credit{
				ID:     uuid.New(),
				Amount: 5000,
				Status: status,
			}

			_, err := service.CancelCredit(context.Background(), creditRepo.credit.ID)

			assert.Error(t, err)
			assert.Nil(t, creditRepo.updated)
		})
	}
}

func TestMarkOverdueSweep(t *testing.T) {
	service, creditRepo, _ := newCreditFixture()
	creditRepo.overdueMarked = 2

	result, err := service.MarkOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.MarkedOverdue)
}
