package analytics

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
)

// DateFormat is the bucket key layout for calendar-day grouping
const DateFormat = "2006-01-02"

// SaleRow is a raw sale fetched from the store, carrying its line items.
// Rows are inputs to Aggregate and are never mutated by it.
type SaleRow struct {
	ID          uuid.UUID
	CreatedAt   time.Time // zero value means the timestamp is missing and the row is skipped
	TotalAmount int64     // centavos
	Items       []LineItem
}

// LineItem is one line of a sale row
type LineItem struct {
	Quantity   int
	UnitPrice  int64 // centavos
	TotalPrice int64 // centavos
	Product    *ProductRef // nil when the product lookup failed
}

// ProductRef is the resolved product behind a line item
type ProductRef struct {
	ID           uuid.UUID
	Name         string
	CostPrice    int64 // centavos, current catalog cost
	CategoryID   *uuid.UUID
	CategoryName string
}

// ProductStock is a live stock level snapshot used by the recommendation engine
type ProductStock struct {
	ID           uuid.UUID
	Name         string
	CurrentStock int
	MinimumStock int
}

// DailySummary is sales activity bucketed by calendar date
type DailySummary struct {
	Date              string `json:"date"`
	TotalSales        int64  `json:"-"` // centavos
	TotalItems        int    `json:"total_items"`
	TotalTransactions int    `json:"total_transactions"`
}

// MarshalJSON renders the centavo total as a decimal peso amount
func (d DailySummary) MarshalJSON() ([]byte, error) {
	type Alias DailySummary
	return json.Marshal(&struct {
		Alias
		TotalSales float64 `json:"total_sales"`
	}{
		Alias:      Alias(d),
		TotalSales: float64(d.TotalSales) / 100,
	})
}

// ProductSummary is sales activity bucketed by (product, calendar date)
type ProductSummary struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Date         string    `json:"date"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      int64     `json:"-"` // centavos
	Profit       int64     `json:"-"` // centavos, margin against the current catalog cost
}

// MarshalJSON renders the centavo amounts as decimal peso amounts
func (p ProductSummary) MarshalJSON() ([]byte, error) {
	type Alias ProductSummary
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
		Profit  float64 `json:"profit"`
	}{
		Alias:   Alias(p),
		Revenue: float64(p.Revenue) / 100,
		Profit:  float64(p.Profit) / 100,
	})
}

// CategorySummary is sales activity bucketed by (category, calendar date)
type CategorySummary struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Date         string    `json:"date"`
	TotalSales   int64     `json:"-"` // centavos
	TotalItems   int       `json:"total_items"`
}

// MarshalJSON renders the centavo total as a decimal peso amount
func (c CategorySummary) MarshalJSON() ([]byte, error) {
	type Alias CategorySummary
	return json.Marshal(&struct {
		Alias
		TotalSales float64 `json:"total_sales"`
	}{
		Alias:      Alias(c),
		TotalSales: float64(c.TotalSales) / 100,
	})
}

// Summaries bundles the three independent aggregations of one pass
type Summaries struct {
	Daily      []DailySummary    `json:"daily"`
	ByProduct  []ProductSummary  `json:"by_product"`
	ByCategory []CategorySummary `json:"by_category"`
}

// Recommendation is a generated, non-binding advisory surfaced to store staff
type Recommendation struct {
	Type     string           `json:"type"`
	Message  string           `json:"message"`
	Priority enum.Priority    `json:"priority"`
	Icon     enum.InsightIcon `json:"icon"`
}

// CustomerAccount identifies a credit customer for risk classification
type CustomerAccount struct {
	ID   uuid.UUID
	Name string
}

// CreditRecord is one utang obligation as seen by the risk classifier
type CreditRecord struct {
	Amount    int64 // centavos
	Status    enum.PaymentStatus
	CreatedAt time.Time
}

// AccountHistory pairs a credit customer with their full obligation history
type AccountHistory struct {
	Account CustomerAccount
	Credits []CreditRecord
}

// CreditRisk is the derived risk tier for one credit customer
type CreditRisk struct {
	CustomerID     uuid.UUID      `json:"customer_id"`
	CustomerName   string         `json:"customer_name"`
	TotalCredit    int64          `json:"-"` // outstanding balance in centavos
	OverdueDays    int            `json:"overdue_days"`
	RiskLevel      enum.RiskLevel `json:"risk_level"`
	Recommendation string         `json:"recommendation"`
}

// MarshalJSON renders the centavo balance as a decimal peso amount
func (r CreditRisk) MarshalJSON() ([]byte, error) {
	type Alias CreditRisk
	return json.Marshal(&struct {
		Alias
		TotalCredit float64 `json:"total_credit"`
	}{
		Alias:       Alias(r),
		TotalCredit: float64(r.TotalCredit) / 100,
	})
}
