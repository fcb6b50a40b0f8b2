package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
)

// Trend is the direction of a daily-total series
type Trend int

const (
	TrendDeclining Trend = -1
	TrendStable    Trend = 0
	TrendGrowing   Trend = 1
)

func (t Trend) String() string {
	switch t {
	case TrendGrowing:
		return "Growing"
	case TrendDeclining:
		return "Declining"
	default:
		return "Stable"
	}
}

// trendThreshold is the relative change beyond which a series counts as
// growing or declining.
const trendThreshold = 0.10

// weekendUpliftFactor is how much higher weekend sales must run, relative to
// the weekday average, before a forecast advisory fires.
const weekendUpliftFactor = 1.15

// maxRecommendations caps the advisory list surfaced to the dashboard
const maxRecommendations = 6

// ClassifyTrend compares the mean of the most recent three points against
// the mean of the three before them. Fewer than six points, or a flat
// baseline, reads as stable.
func ClassifyTrend(values []float64) Trend {
	if len(values) < 6 {
		return TrendStable
	}

	recent := values[len(values)-3:]
	older := values[len(values)-6 : len(values)-3]

	recentAvg := mean(recent)
	olderAvg := mean(older)
	if olderAvg == 0 {
		return TrendStable
	}

	change := (recentAvg - olderAvg) / olderAvg
	if change > trendThreshold {
		return TrendGrowing
	}
	if change < -trendThreshold {
		return TrendDeclining
	}
	return TrendStable
}

// DaysUntilDepletion projects how many days of sellable stock remain above
// the minimum level, given the product's daily sales history. Zero means the
// product is already at or below minimum; a negative result means sales
// history gives no usable velocity.
func DaysUntilDepletion(currentStock, minimumStock int, dailyQuantities []int) int {
	if currentStock <= minimumStock {
		return 0
	}
	if len(dailyQuantities) == 0 {
		return -1
	}

	var total int
	for _, q := range dailyQuantities {
		total += q
	}
	avgDaily := float64(total) / float64(len(dailyQuantities))
	if avgDaily <= 0 {
		return -1
	}

	return int(math.Ceil(float64(currentStock-minimumStock) / avgDaily))
}

// Recommend produces a ranked, capped list of advisories from the three
// summary collections plus live product stock levels. It is a pure function
// of its inputs and never returns more than six entries, sorted by priority
// descending with insertion order preserved among equals.
func Recommend(s Summaries, stocks []ProductStock) []Recommendation {
	var recs []Recommendation
	recs = append(recs, stockRecommendations(s.ByProduct, stocks)...)
	recs = append(recs, salesTrendRecommendations(s.Daily)...)
	recs = append(recs, categoryRecommendations(s.ByCategory)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority > recs[j].Priority
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func stockRecommendations(byProduct []ProductSummary, stocks []ProductStock) []Recommendation {
	stockByID := make(map[uuid.UUID]ProductStock, len(stocks))
	for _, st := range stocks {
		stockByID[st.ID] = st
	}

	// Group daily quantities per product, preserving first-seen order so
	// the output is deterministic.
	history := make(map[uuid.UUID][]int)
	var order []uuid.UUID
	for _, ps := range byProduct {
		if _, ok := history[ps.ProductID]; !ok {
			order = append(order, ps.ProductID)
		}
		history[ps.ProductID] = append(history[ps.ProductID], ps.QuantitySold)
	}

	var recs []Recommendation
	for _, id := range order {
		st, ok := stockByID[id]
		if !ok {
			continue
		}

		days := DaysUntilDepletion(st.CurrentStock, st.MinimumStock, history[id])
		if days > 0 && days <= 3 {
			recs = append(recs, Recommendation{
				Type:     "Stock Prediction",
				Message:  fmt.Sprintf("%s will run out in %d days based on current sales trend", st.Name, days),
				Priority: enum.PriorityHigh,
				Icon:     enum.InsightIconPackage,
			})
		}

		// Independent of the projection above; both can fire for one product.
		if st.CurrentStock <= st.MinimumStock {
			recs = append(recs, Recommendation{
				Type:     "Stock Alert",
				Message:  fmt.Sprintf("%s is at critical stock level - immediate restocking needed", st.Name),
				Priority: enum.PriorityHigh,
				Icon:     enum.InsightIconAlertTriangle,
			})
		}
	}
	return recs
}

func salesTrendRecommendations(daily []DailySummary) []Recommendation {
	if len(daily) == 0 {
		return nil
	}

	// Work on a chronologically ordered copy; callers pass buckets in
	// first-encounter order.
	ordered := make([]DailySummary, len(daily))
	copy(ordered, daily)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	sales := make([]float64, len(ordered))
	for i, d := range ordered {
		sales[i] = float64(d.TotalSales)
	}

	var recs []Recommendation

	// Weekend uplift: compare the weekend-day average against the weekday
	// average. With zero weekend days in the window this stays silent.
	var weekendTotal, weekdayTotal float64
	var weekendDays, weekdayDays int
	for i, d := range ordered {
		day, err := time.Parse(DateFormat, d.Date)
		if err != nil {
			continue
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendTotal += sales[i]
			weekendDays++
		} else {
			weekdayTotal += sales[i]
			weekdayDays++
		}
	}
	if weekendDays > 0 && weekdayDays > 0 && weekdayTotal > 0 {
		weekendAvg := weekendTotal / float64(weekendDays)
		weekdayAvg := weekdayTotal / float64(weekdayDays)
		if weekendAvg > weekdayAvg*weekendUpliftFactor {
			uplift := int(math.Round((weekendAvg/weekdayAvg - 1) * 100))
			recs = append(recs, Recommendation{
				Type:     "Sales Forecast",
				Message:  fmt.Sprintf("Weekend sales expected to increase by %d%% - prepare extra inventory", uplift),
				Priority: enum.PriorityMedium,
				Icon:     enum.InsightIconTrendingUp,
			})
		}
	}

	switch ClassifyTrend(sales) {
	case TrendGrowing:
		recs = append(recs, Recommendation{
			Type:     "Growth Opportunity",
			Message:  "Sales are trending upward - consider expanding popular product lines",
			Priority: enum.PriorityMedium,
			Icon:     enum.InsightIconTrendingUp,
		})
	case TrendDeclining:
		recs = append(recs, Recommendation{
			Type:     "Sales Alert",
			Message:  "Sales are declining - review pricing and marketing strategies",
			Priority: enum.PriorityMedium,
			Icon:     enum.InsightIconTrendingDown,
		})
	}

	return recs
}

func categoryRecommendations(byCategory []CategorySummary) []Recommendation {
	totals := make(map[uuid.UUID]int64)
	names := make(map[uuid.UUID]string)
	var order []uuid.UUID
	for _, cs := range byCategory {
		if _, ok := totals[cs.CategoryID]; !ok {
			order = append(order, cs.CategoryID)
			names[cs.CategoryID] = cs.CategoryName
		}
		totals[cs.CategoryID] += cs.TotalSales
	}

	if len(order) < 2 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	top := names[order[0]]
	return []Recommendation{{
		Type:     "Category Insight",
		Message:  fmt.Sprintf("%s is your top performing category - consider expanding this product line", top),
		Priority: enum.PriorityLow,
		Icon:     enum.InsightIconTarget,
	}}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
