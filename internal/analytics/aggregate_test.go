package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	prodCola   = &ProductRef{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Coca-Cola 350ml", CategoryID: catBeverages(), CategoryName: "Beverages"}
	prodCanton = &ProductRef{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Lucky Me Pancit Canton", CategoryID: catNoodles(), CategoryName: "Instant Noodles"}
)

func catBeverages() *uuid.UUID {
	id := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	return &id
}

func catNoodles() *uuid.UUID {
	id := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	return &id
}

func saleAt(ts time.Time, total int64, items ...LineItem) SaleRow {
	return SaleRow{ID: uuid.New(), CreatedAt: ts, TotalAmount: total, Items: items}
}

func TestAggregateEmpty(t *testing.T) {
	out := Aggregate(nil, nil)

	assert.Empty(t, out.Daily)
	assert.Empty(t, out.ByProduct)
	assert.Empty(t, out.ByCategory)
}

func TestAggregateDailyBuckets(t *testing.T) {
	day1 := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 4, 18, 30, 0, 0, time.UTC)

	rows := []SaleRow{
		saleAt(day1, 4300, LineItem{Quantity: 2, UnitPrice: 2500, TotalPrice: 5000, Product: prodCola}),
		saleAt(day1.Add(2*time.Hour), 1800, LineItem{Quantity: 1, UnitPrice: 1800, TotalPrice: 1800, Product: prodCanton}),
		saleAt(day2, 2500, LineItem{Quantity: 1, UnitPrice: 2500, TotalPrice: 2500, Product: prodCola}),
	}

	out := Aggregate(rows, time.UTC)

	require.Len(t, out.Daily, 2)
	assert.Equal(t, "2024-06-03", out.Daily[0].Date)
	assert.Equal(t, int64(6100), out.Daily[0].TotalSales)
	assert.Equal(t, 3, out.Daily[0].TotalItems)
	assert.Equal(t, 2, out.Daily[0].TotalTransactions)
	assert.Equal(t, "2024-06-04", out.Daily[1].Date)
	assert.Equal(t, 1, out.Daily[1].TotalTransactions)

	// Total sales across buckets must equal the sum over all valid rows.
	var bucketed, raw int64
	for _, d := range out.Daily {
		bucketed += d.TotalSales
	}
	for _, r := range rows {
		raw += r.TotalAmount
	}
	assert.Equal(t, raw, bucketed)
}

func TestAggregateProductAndCategoryBuckets(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	rows := []SaleRow{
		saleAt(day, 6800,
			LineItem{Quantity: 2, UnitPrice: 2500, TotalPrice: 5000, Product: prodCola},
			LineItem{Quantity: 1, UnitPrice: 1800, TotalPrice: 1800, Product: prodCanton},
		),
		saleAt(day.Add(time.Hour), 2500,
			LineItem{Quantity: 1, UnitPrice: 2500, TotalPrice: 2500, Product: prodCola},
		),
	}

	out := Aggregate(rows, time.UTC)

	require.Len(t, out.ByProduct, 2)
	assert.Equal(t, prodCola.ID, out.ByProduct[0].ProductID)
	assert.Equal(t, 3, out.ByProduct[0].QuantitySold)
	assert.Equal(t, int64(7500), out.ByProduct[0].Revenue)
	assert.Equal(t, prodCanton.ID, out.ByProduct[1].ProductID)
	assert.Equal(t, 1, out.ByProduct[1].QuantitySold)

	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Beverages", out.ByCategory[0].CategoryName)
	assert.Equal(t, int64(7500), out.ByCategory[0].TotalSales)
	assert.Equal(t, 3, out.ByCategory[0].TotalItems)
}

func TestAggregateSkipsMalformedRows(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	orphan := &ProductRef{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "No Category"}

	rows := []SaleRow{
		{ID: uuid.Nil, CreatedAt: day, TotalAmount: 9999},      // missing id
		{ID: uuid.New(), TotalAmount: 9999},                    // missing timestamp
		saleAt(day, 1800,
			LineItem{Quantity: -2, TotalPrice: -3600, Product: prodCola}, // negative quantity
			LineItem{Quantity: 1, TotalPrice: 1800},                      // unresolved product
			LineItem{Quantity: 1, TotalPrice: 1500, Product: orphan},     // product without category
		),
	}

	out := Aggregate(rows, time.UTC)

	require.Len(t, out.Daily, 1)
	assert.Equal(t, int64(1800), out.Daily[0].TotalSales)
	assert.Equal(t, 2, out.Daily[0].TotalItems)
	assert.Equal(t, 1, out.Daily[0].TotalTransactions)

	require.Len(t, out.ByProduct, 1)
	assert.Equal(t, orphan.ID, out.ByProduct[0].ProductID)
	assert.Empty(t, out.ByCategory)
}

func TestAggregateDeduplicatesSaleIDs(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	row := saleAt(day, 2500, LineItem{Quantity: 1, UnitPrice: 2500, TotalPrice: 2500, Product: prodCola})

	// Same sale appearing twice, as after a refetch race.
	out := Aggregate([]SaleRow{row, row}, time.UTC)

	require.Len(t, out.Daily, 1)
	assert.Equal(t, int64(2500), out.Daily[0].TotalSales)
	assert.Equal(t, 1, out.Daily[0].TotalTransactions)
	require.Len(t, out.ByProduct, 1)
	assert.Equal(t, 1, out.ByProduct[0].QuantitySold)
}

func TestAggregateIsIdempotent(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	rows := []SaleRow{
		saleAt(day, 5000, LineItem{Quantity: 2, UnitPrice: 2500, TotalPrice: 5000, Product: prodCola}),
		saleAt(day.AddDate(0, 0, 1), 1800, LineItem{Quantity: 1, UnitPrice: 1800, TotalPrice: 1800, Product: prodCanton}),
	}

	first := Aggregate(rows, time.UTC)
	second := Aggregate(rows, time.UTC)

	assert.Equal(t, first, second)
}

func TestAggregateUsesConfiguredTimezone(t *testing.T) {
	manila := time.FixedZone("Asia/Manila", 8*60*60)
	// 23:30 UTC is already the next calendar day in Manila.
	late := time.Date(2024, 6, 3, 23, 30, 0, 0, time.UTC)
	rows := []SaleRow{saleAt(late, 2500)}

	utc := Aggregate(rows, time.UTC)
	local := Aggregate(rows, manila)

	require.Len(t, utc.Daily, 1)
	require.Len(t, local.Daily, 1)
	assert.Equal(t, "2024-06-03", utc.Daily[0].Date)
	assert.Equal(t, "2024-06-04", local.Daily[0].Date)
}
