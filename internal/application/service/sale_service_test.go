package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/internal/events"
	"github.com/sarisense/sarisense-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo serves a fixed catalog and records stock decrements
type fakeProductRepo struct {
	products   map[uuid.UUID]entity.Product
	batched    []entity.Product
	clamped    []uuid.UUID
	decrements map[uuid.UUID]int
	increments map[uuid.UUID]int
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products[product.ID] = *product
	return nil
}
func (f *fakeProductRepo) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		if products[i].ID == uuid.Nil {
			products[i].ID = uuid.New()
		}
		f.products[products[i].ID] = products[i]
	}
	f.batched = append(f.batched, products...)
	return nil
}
func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}
func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (f *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) IncrementStock(ctx context.Context, id uuid.UUID, amount int) error {
	if f.increments == nil {
		f.increments = map[uuid.UUID]int{}
	}
	f.increments[id] += amount
	if p, ok := f.products[id]; ok {
		p.CurrentStock += amount
		f.products[id] = p
	}
	return nil
}
func (f *fakeProductRepo) DecrementStockClamped(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	f.decrements = decrements
	return f.clamped, nil
}

// fakeSaleRepo captures the committed sale, its items and the utang row
type fakeSaleRepo struct {
	sale      *entity.Sale
	items     []entity.SaleItem
	credit    *entity.Credit
	createErr error
}

func (f *fakeSaleRepo) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, credit *entity.Credit) error {
	if f.createErr != nil {
		return f.createErr
	}
	sale.ID = uuid.New()
	sale.CreatedAt = time.Now()
	if credit != nil {
		credit.ID = uuid.New()
		credit.SaleID = &sale.ID
	}
	f.sale = sale
	f.items = items
	f.credit = credit
	return nil
}
func (f *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.sale, nil
}
func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}

// fakeCustomerRepo serves a single customer
type fakeCustomerRepo struct {
	customer *entity.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if f.customer != nil && f.customer.ID == id {
		return f.customer, nil
	}
	return nil, nil
}
func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

// fakeCreditRepo reports a fixed outstanding balance and captures new credits
type fakeCreditRepo struct {
	outstanding   int64
	created       *entity.Credit
	credit        *entity.Credit
	updated       *entity.Credit
	settled       int64
	overdueMarked int64
}

func (f *fakeCreditRepo) Create(ctx context.Context, credit *entity.Credit) error {
	credit.ID = uuid.New()
	f.created = credit
	return nil
}
func (f *fakeCreditRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Credit, error) {
	if f.credit != nil && f.credit.ID == id {
		return f.credit, nil
	}
	return nil, nil
}
func (f *fakeCreditRepo) Update(ctx context.Context, credit *entity.Credit) error {
	f.updated = credit
	return nil
}
func (f *fakeCreditRepo) List(ctx context.Context, params *repository.CreditFilterParams) ([]entity.Credit, int64, error) {
	return nil, 0, nil
}
func (f *fakeCreditRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Credit, error) {
	return nil, nil
}
func (f *fakeCreditRepo) OutstandingBalance(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return f.outstanding, nil
}
func (f *fakeCreditRepo) SettleOutstanding(ctx context.Context, customerID uuid.UUID, paidDate time.Time) (int64, error) {
	return f.settled, nil
}
func (f *fakeCreditRepo) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.overdueMarked, nil
}

type saleFixture struct {
	service      *SaleService
	productRepo  *fakeProductRepo
	saleRepo     *fakeSaleRepo
	customerRepo *fakeCustomerRepo
	creditRepo   *fakeCreditRepo
	bus          *events.Bus
}

func newSaleFixture(products ...entity.Product) *saleFixture {
	productRepo := &fakeProductRepo{products: map[uuid.UUID]entity.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	saleRepo := &fakeSaleRepo{}
	customerRepo := &fakeCustomerRepo{}
	creditRepo := &fakeCreditRepo{}
	bus := events.NewBus()

	return &saleFixture{
		service:      NewSaleService(saleRepo, productRepo, customerRepo, creditRepo, bus),
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		creditRepo:   creditRepo,
		bus:          bus,
	}
}

func testProduct(name string, priceCentavos int64, stock int) entity.Product {
	return entity.Product{
		ID:           uuid.New(),
		Name:         name,
		UnitPrice:    priceCentavos,
		CurrentStock: stock,
		IsActive:     true,
	}
}

func TestCheckoutCashSale(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	noodles := testProduct("Lucky Me Pancit Canton", 1800, 50)
	fx := newSaleFixture(coke, noodles)
	defer fx.bus.Close()

	out, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID: uuid.New(),
		Items: []CartItemInput{
			{ProductID: coke.ID, Quantity: 2},
			{ProductID: noodles.ID, Quantity: 3},
		},
		AmountPaid: 150.00,
	})

	require.NoError(t, err)
	require.NotNil(t, out.Sale)
	// 2 x 25.00 + 3 x 18.00 = 104.00, change 46.00
	assert.Equal(t, int64(10400), out.Sale.TotalAmount)
	assert.Equal(t, int64(15000), out.Sale.AmountPaid)
	assert.Equal(t, int64(4600), out.Sale.ChangeAmount)
	assert.Equal(t, int64(0), out.Sale.CreditAmount)
	assert.NotEmpty(t, out.Sale.ReceiptNo)
	assert.Empty(t, out.Warnings)

	require.Len(t, fx.saleRepo.items, 2)
	assert.Equal(t, int64(5000), fx.saleRepo.items[0].TotalPrice)
	assert.Equal(t, 2, fx.productRepo.decrements[coke.ID])
	assert.Equal(t, 3, fx.productRepo.decrements[noodles.ID])
	assert.Nil(t, fx.saleRepo.credit)
}

func TestCheckoutMergesDuplicateLines(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()

	out, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID: uuid.New(),
		Items: []CartItemInput{
			{ProductID: coke.ID, Quantity: 1},
			{ProductID: coke.ID, Quantity: 2},
		},
		AmountPaid: 75.00,
	})

	require.NoError(t, err)
	require.Len(t, fx.saleRepo.items, 1)
	assert.Equal(t, 3, fx.saleRepo.items[0].Quantity)
	assert.Equal(t, int64(7500), out.Sale.TotalAmount)
}

func TestCheckoutRejectsBadCarts(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()

	tests := []struct {
		name  string
		input *CheckoutInput
	}{
		{"empty cart", &CheckoutInput{CashierID: uuid.New(), AmountPaid: 10}},
		{"zero quantity", &CheckoutInput{
			CashierID:  uuid.New(),
			Items:      []CartItemInput{{ProductID: coke.ID, Quantity: 0}},
			AmountPaid: 10,
		}},
		{"negative payment", &CheckoutInput{
			CashierID:  uuid.New(),
			Items:      []CartItemInput{{ProductID: coke.ID, Quantity: 1}},
			AmountPaid: -5,
		}},
		{"unknown product", &CheckoutInput{
			CashierID:  uuid.New(),
			Items:      []CartItemInput{{ProductID: uuid.New(), Quantity: 1}},
			AmountPaid: 10,
		}},
		{"payment short of total", &CheckoutInput{
			CashierID:  uuid.New(),
			Items:      []CartItemInput{{ProductID: coke.ID, Quantity: 2}},
			AmountPaid: 10.00,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Checkout(context.Background(), tt.input)
			assert.Error(t, err)
			assert.Nil(t, fx.saleRepo.sale)
		})
	}
}

func TestCheckoutRejectsInactiveProduct(t *testing.T) {
	discontinued := testProduct("Old Stock Biscuit", 1000, 5)
	discontinued.IsActive = false
	fx := newSaleFixture(discontinued)
	defer fx.bus.Close()

	_, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID:  uuid.New(),
		Items:      []CartItemInput{{ProductID: discontinued.ID, Quantity: 1}},
		AmountPaid: 10.00,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer sold")
}

func TestCheckoutOnCredit(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()

	customerID := uuid.New()
	fx.customerRepo.customer = &entity.Customer{
		ID:          customerID,
		Name:        "Maria Santos",
		CreditLimit: 50000,
		IsActive:    true,
	}

	out, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID:    uuid.New(),
		CustomerID:   &customerID,
		Items:        []CartItemInput{{ProductID: coke.ID, Quantity: 4}},
		AmountPaid:   50.00,
		CreditAmount: 50.00,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10000), out.Sale.TotalAmount)
	assert.Equal(t, int64(5000), out.Sale.CreditAmount)

	require.NotNil(t, fx.saleRepo.credit)
	credit := fx.saleRepo.credit
	assert.Equal(t, customerID, credit.CustomerID)
	assert.Equal(t, int64(5000), credit.Amount)
	assert.Equal(t, enum.PaymentStatusPending, credit.Status)
	require.NotNil(t, credit.SaleID)
	assert.Equal(t, out.Sale.ID, *credit.SaleID)
	require.NotNil(t, credit.DueDate)
	wantDue := time.Now().AddDate(0, 0, creditTermDays)
	assert.WithinDuration(t, wantDue, *credit.DueDate, time.Minute)
}

func TestCheckoutRestoresStockWhenSaleInsertFails(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	noodles := testProduct("Lucky Me Pancit Canton", 1800, 2)
	fx := newSaleFixture(coke, noodles)
	defer fx.bus.Close()

	// Noodles get clamped, so their exact decrement is unknown and they
	// must be left alone by the restore.
	fx.productRepo.clamped = []uuid.UUID{noodles.ID}
	fx.saleRepo.createErr = errors.New("connection reset")

	_, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID: uuid.New(),
		Items: []CartItemInput{
			{ProductID: coke.ID, Quantity: 3},
			{ProductID: noodles.ID, Quantity: 5},
		},
		AmountPaid: 200.00,
	})

	require.Error(t, err)
	assert.Nil(t, fx.saleRepo.sale)
	assert.Equal(t, 3, fx.productRepo.increments[coke.ID])
	assert.NotContains(t, fx.productRepo.increments, noodles.ID)
}

func TestCheckoutAcceptsExactPaymentDespiteFloatNoise(t *testing.T) {
	// 0.15 + 0.14 cannot be represented exactly in a float64, and a
	// truncating conversion of 0.29 pesos lands on 28 centavos.
	candy := testProduct("Tira-tira", 15, 10)
	gum := testProduct("Bazooka", 14, 10)
	fx := newSaleFixture(candy, gum)
	defer fx.bus.Close()

	out, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID: uuid.New(),
		Items: []CartItemInput{
			{ProductID: candy.ID, Quantity: 1},
			{ProductID: gum.ID, Quantity: 1},
		},
		AmountPaid: 0.29,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(29), out.Sale.TotalAmount)
	assert.Equal(t, int64(29), out.Sale.AmountPaid)
	assert.Equal(t, int64(0), out.Sale.ChangeAmount)
}

func TestCheckoutCreditRequiresCustomer(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()

	_, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID:    uuid.New(),
		Items:        []CartItemInput{{ProductID: coke.ID, Quantity: 1}},
		CreditAmount: 25.00,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "require a customer")
}

func TestCheckoutCreditLimitEnforced(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()

	customerID := uuid.New()
	fx.customerRepo.customer = &entity.Customer{
		ID:          customerID,
		Name:        "Juan Dela Cruz",
		CreditLimit: 50000, // 500 pesos
		IsActive:    true,
	}
	fx.creditRepo.outstanding = 48000 // 480 pesos already owed

	_, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID:    uuid.New(),
		CustomerID:   &customerID,
		Items:        []CartItemInput{{ProductID: coke.ID, Quantity: 2}},
		CreditAmount: 50.00,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Credit limit exceeded")
	assert.Nil(t, fx.saleRepo.sale)
}

func TestCheckoutClampWarning(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 1)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()
	fx.productRepo.clamped = []uuid.UUID{coke.ID}

	out, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID:  uuid.New(),
		Items:      []CartItemInput{{ProductID: coke.ID, Quantity: 5}},
		AmountPaid: 125.00,
	})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "Coca-Cola 350ml")
}

func TestCheckoutPublishesSaleEvent(t *testing.T) {
	coke := testProduct("Coca-Cola 350ml", 2500, 24)
	fx := newSaleFixture(coke)
	defer fx.bus.Close()
	feed := fx.bus.Subscribe(1)

	out, err := fx.service.Checkout(context.Background(), &CheckoutInput{
		CashierID:  uuid.New(),
		Items:      []CartItemInput{{ProductID: coke.ID, Quantity: 1}},
		AmountPaid: 25.00,
	})
	require.NoError(t, err)

	select {
	case ev := <-feed:
		assert.Equal(t, out.Sale.ID, ev.SaleID)
		assert.Equal(t, int64(2500), ev.TotalAmount)
	case <-time.After(time.Second):
		t.Fatal("expected a sale event on the bus")
	}
}
