package analytics

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByType(recs []Recommendation, typ string) *Recommendation {
	for i := range recs {
		if recs[i].Type == typ {
			return &recs[i]
		}
	}
	return nil
}

func TestRecommendEmptyInputs(t *testing.T) {
	recs := Recommend(Summaries{}, nil)

	assert.Empty(t, recs)
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Trend
	}{
		{"growing", []float64{100, 100, 100, 120, 120, 120}, TrendGrowing},
		{"declining", []float64{120, 120, 120, 100, 100, 100}, TrendDeclining},
		{"stable", []float64{100, 100, 100, 105, 105, 105}, TrendStable},
		{"too few points", []float64{100, 200, 300, 400, 500}, TrendStable},
		{"flat baseline", []float64{0, 0, 0, 50, 50, 50}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrend(tt.values))
		})
	}
}

func TestDaysUntilDepletion(t *testing.T) {
	// Exactly at the boundary of the three-day trigger.
	assert.Equal(t, 3, DaysUntilDepletion(9, 0, []int{3, 3, 3}))

	assert.Equal(t, 0, DaysUntilDepletion(5, 5, []int{3}))
	assert.Equal(t, 0, DaysUntilDepletion(2, 5, nil))
	assert.Equal(t, -1, DaysUntilDepletion(10, 0, nil))
	assert.Equal(t, -1, DaysUntilDepletion(10, 0, []int{0, 0}))
	assert.Equal(t, 4, DaysUntilDepletion(10, 0, []int{3, 3, 3}))
}

func TestStockPredictionAtBoundary(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	s := Summaries{ByProduct: []ProductSummary{
		{ProductID: id, ProductName: "Coca-Cola 350ml", Date: "2024-06-03", QuantitySold: 3},
		{ProductID: id, ProductName: "Coca-Cola 350ml", Date: "2024-06-04", QuantitySold: 3},
		{ProductID: id, ProductName: "Coca-Cola 350ml", Date: "2024-06-05", QuantitySold: 3},
	}}
	stocks := []ProductStock{{ID: id, Name: "Coca-Cola 350ml", CurrentStock: 9, MinimumStock: 0}}

	recs := Recommend(s, stocks)

	pred := findByType(recs, "Stock Prediction")
	require.NotNil(t, pred)
	assert.Equal(t, enum.PriorityHigh, pred.Priority)
	assert.Contains(t, pred.Message, "3 days")
	assert.Equal(t, enum.InsightIconPackage, pred.Icon)
}

func TestStockAlertAtMinimum(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	s := Summaries{ByProduct: []ProductSummary{
		{ProductID: id, ProductName: "Safeguard Soap 90g", Date: "2024-06-03", QuantitySold: 2},
	}}
	stocks := []ProductStock{{ID: id, Name: "Safeguard Soap 90g", CurrentStock: 4, MinimumStock: 5}}

	recs := Recommend(s, stocks)

	alert := findByType(recs, "Stock Alert")
	require.NotNil(t, alert)
	assert.Equal(t, enum.PriorityHigh, alert.Priority)
	assert.Equal(t, enum.InsightIconAlertTriangle, alert.Icon)
	assert.Nil(t, findByType(recs, "Stock Prediction"))
}

func TestWeekendUplift(t *testing.T) {
	// Mon Jun 3 .. Sun Jun 9 2024. Weekdays 1000, weekend 1200 (pesos).
	daily := []DailySummary{
		{Date: "2024-06-03", TotalSales: 100000},
		{Date: "2024-06-04", TotalSales: 100000},
		{Date: "2024-06-05", TotalSales: 100000},
		{Date: "2024-06-06", TotalSales: 100000},
		{Date: "2024-06-07", TotalSales: 100000},
		{Date: "2024-06-08", TotalSales: 120000}, // Saturday
		{Date: "2024-06-09", TotalSales: 120000}, // Sunday
	}

	recs := Recommend(Summaries{Daily: daily}, nil)

	forecast := findByType(recs, "Sales Forecast")
	require.NotNil(t, forecast)
	assert.Equal(t, enum.PriorityMedium, forecast.Priority)
	assert.Contains(t, forecast.Message, "20%")
}

func TestWeekendUpliftNeedsWeekendDays(t *testing.T) {
	daily := []DailySummary{
		{Date: "2024-06-03", TotalSales: 100000},
		{Date: "2024-06-04", TotalSales: 500000},
		{Date: "2024-06-05", TotalSales: 100000},
	}

	recs := Recommend(Summaries{Daily: daily}, nil)

	assert.Nil(t, findByType(recs, "Sales Forecast"))
}

func TestSalesTrendRecommendations(t *testing.T) {
	growing := make([]DailySummary, 0, 6)
	for i, v := range []int64{100000, 100000, 100000, 130000, 130000, 130000} {
		growing = append(growing, DailySummary{Date: fmt.Sprintf("2024-06-%02d", 3+i), TotalSales: v})
	}

	recs := Recommend(Summaries{Daily: growing}, nil)
	require.NotNil(t, findByType(recs, "Growth Opportunity"))

	declining := make([]DailySummary, 0, 6)
	for i, v := range []int64{130000, 130000, 130000, 100000, 100000, 100000} {
		declining = append(declining, DailySummary{Date: fmt.Sprintf("2024-06-%02d", 3+i), TotalSales: v})
	}

	recs = Recommend(Summaries{Daily: declining}, nil)
	alert := findByType(recs, "Sales Alert")
	require.NotNil(t, alert)
	assert.Equal(t, enum.InsightIconTrendingDown, alert.Icon)
}

func TestCategoryInsightNeedsTwoCategories(t *testing.T) {
	bev := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	noodles := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")

	one := Summaries{ByCategory: []CategorySummary{
		{CategoryID: bev, CategoryName: "Beverages", Date: "2024-06-03", TotalSales: 50000},
	}}
	assert.Nil(t, findByType(Recommend(one, nil), "Category Insight"))

	two := Summaries{ByCategory: []CategorySummary{
		{CategoryID: bev, CategoryName: "Beverages", Date: "2024-06-03", TotalSales: 50000},
		{CategoryID: noodles, CategoryName: "Instant Noodles", Date: "2024-06-03", TotalSales: 90000},
		{CategoryID: bev, CategoryName: "Beverages", Date: "2024-06-04", TotalSales: 20000},
	}}

	insight := findByType(Recommend(two, nil), "Category Insight")
	require.NotNil(t, insight)
	assert.Equal(t, enum.PriorityLow, insight.Priority)
	assert.Contains(t, insight.Message, "Instant Noodles")
}

func TestRecommendCapAndOrdering(t *testing.T) {
	// Eight products at or below minimum stock produce eight High alerts;
	// plus a category insight that must be pushed out by the cap.
	var byProduct []ProductSummary
	var stocks []ProductStock
	for i := 0; i < 8; i++ {
		id := uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1))
		name := fmt.Sprintf("Product %d", i+1)
		byProduct = append(byProduct, ProductSummary{ProductID: id, ProductName: name, Date: "2024-06-03", QuantitySold: 1})
		stocks = append(stocks, ProductStock{ID: id, Name: name, CurrentStock: 0, MinimumStock: 5})
	}
	bev := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	noodles := uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	s := Summaries{
		ByProduct: byProduct,
		ByCategory: []CategorySummary{
			{CategoryID: bev, CategoryName: "Beverages", Date: "2024-06-03", TotalSales: 50000},
			{CategoryID: noodles, CategoryName: "Instant Noodles", Date: "2024-06-03", TotalSales: 90000},
		},
	}

	recs := Recommend(s, stocks)

	require.Len(t, recs, 6)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Priority, recs[i].Priority)
	}
	// Stable order among equal priorities follows insertion order.
	assert.Contains(t, recs[0].Message, "Product 1")
	assert.Contains(t, recs[1].Message, "Product 2")
	assert.Nil(t, findByType(recs, "Category Insight"))
}
