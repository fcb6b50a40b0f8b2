package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	marginCola = &ProductRef{
		ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Name:      "Coca-Cola 350ml",
		CostPrice: 1800,
	}
	marginEggs = &ProductRef{
		ID:        uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		Name:      "Itlog (per piece)",
		CostPrice: 700,
	}
	marginLoad = &ProductRef{
		ID:        uuid.MustParse("55555555-5555-5555-5555-555555555555"),
		Name:      "Globe Load 50",
		CostPrice: 4900,
	}
)

func TestAggregateAccumulatesProfit(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	rows := []SaleRow{
		saleAt(day, 5000, LineItem{Quantity: 2, UnitPrice: 2500, TotalPrice: 5000, Product: marginCola}),
		saleAt(day.Add(time.Hour), 2500, LineItem{Quantity: 1, UnitPrice: 2500, TotalPrice: 2500, Product: marginCola}),
	}

	out := Aggregate(rows, time.UTC)

	require.Len(t, out.ByProduct, 1)
	// (25.00 - 18.00) x 3 pieces = 21.00 margin
	assert.Equal(t, int64(2100), out.ByProduct[0].Profit)
	assert.Equal(t, int64(7500), out.ByProduct[0].Revenue)
}

func TestTopProfitableRanksByMargin(t *testing.T) {
	day1 := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	rows := []SaleRow{
		// Load sells for 55.00 at a 49.00 cost: high turnover, thin margin
		saleAt(day1, 5500, LineItem{Quantity: 1, UnitPrice: 5500, TotalPrice: 5500, Product: marginLoad}),
		saleAt(day2, 5500, LineItem{Quantity: 1, UnitPrice: 5500, TotalPrice: 5500, Product: marginLoad}),
		// Cola margin is 7.00 a piece across both days
		saleAt(day1, 2500, LineItem{Quantity: 1, UnitPrice: 2500, TotalPrice: 2500, Product: marginCola}),
		saleAt(day2, 5000, LineItem{Quantity: 2, UnitPrice: 2500, TotalPrice: 5000, Product: marginCola}),
		// Eggs margin is 3.00 a piece
		saleAt(day1, 5000, LineItem{Quantity: 5, UnitPrice: 1000, TotalPrice: 5000, Product: marginEggs}),
	}

	top := TopProfitable(Aggregate(rows, time.UTC), 10)

	require.Len(t, top, 3)
	// Cola: 7.00 x 3 = 21.00, eggs: 3.00 x 5 = 15.00, load: 6.00 x 2 = 12.00
	assert.Equal(t, marginCola.ID, top[0].ProductID)
	assert.Equal(t, int64(2100), top[0].Profit)
	assert.Equal(t, 3, top[0].QuantitySold)
	assert.Equal(t, marginEggs.ID, top[1].ProductID)
	assert.Equal(t, int64(1500), top[1].Profit)
	assert.Equal(t, marginLoad.ID, top[2].ProductID)
	assert.Equal(t, int64(1200), top[2].Profit)
}

func TestTopProfitableTruncates(t *testing.T) {
	day := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	rows := []SaleRow{
		saleAt(day, 2500, LineItem{Quantity: 1, UnitPrice: 2500, TotalPrice: 2500, Product: marginCola}),
		saleAt(day, 1000, LineItem{Quantity: 1, UnitPrice: 1000, TotalPrice: 1000, Product: marginEggs}),
		saleAt(day, 5500, LineItem{Quantity: 1, UnitPrice: 5500, TotalPrice: 5500, Product: marginLoad}),
	}

	top := TopProfitable(Aggregate(rows, time.UTC), 2)

	require.Len(t, top, 2)
	assert.Equal(t, marginCola.ID, top[0].ProductID)
	assert.Equal(t, marginLoad.ID, top[1].ProductID)
}

func TestTopProfitableEmpty(t *testing.T) {
	assert.Empty(t, TopProfitable(Summaries{}, 5))
}
