package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Aggregate converts raw sale rows into three independent summary
// collections: by calendar date, by (product, date) and by (category, date).
// Bucket dates are computed in loc; passing nil falls back to UTC.
//
// The pass is best-effort: rows without an id or timestamp are skipped, as
// are line items with a non-positive quantity or an unresolved product.
// A sale id appearing more than once is counted only the first time, so a
// refetched row can never double-count. Output order is the insertion order
// of the first row seen for each bucket, which makes the function a pure
// one: identical input always yields identical output.
func Aggregate(rows []SaleRow, loc *time.Location) Summaries {
	if loc == nil {
		loc = time.UTC
	}

	daily := make(map[string]*DailySummary)
	var dailyOrder []string

	type productKey struct {
		id   uuid.UUID
		date string
	}
	byProduct := make(map[productKey]*ProductSummary)
	var productOrder []productKey

	type categoryKey struct {
		id   uuid.UUID
		date string
	}
	byCategory := make(map[categoryKey]*CategorySummary)
	var categoryOrder []categoryKey

	seen := make(map[uuid.UUID]bool, len(rows))

	for _, row := range rows {
		if row.ID == uuid.Nil || row.CreatedAt.IsZero() {
			continue
		}
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true

		date := row.CreatedAt.In(loc).Format(DateFormat)

		day, ok := daily[date]
		if !ok {
			day = &DailySummary{Date: date}
			daily[date] = day
			dailyOrder = append(dailyOrder, date)
		}
		day.TotalSales += row.TotalAmount
		day.TotalTransactions++

		for _, item := range row.Items {
			if item.Quantity <= 0 {
				continue
			}
			day.TotalItems += item.Quantity

			if item.Product == nil {
				continue
			}

			pk := productKey{id: item.Product.ID, date: date}
			prod, ok := byProduct[pk]
			if !ok {
				prod = &ProductSummary{
					ProductID:   item.Product.ID,
					ProductName: item.Product.Name,
					Date:        date,
				}
				byProduct[pk] = prod
				productOrder = append(productOrder, pk)
			}
			prod.QuantitySold += item.Quantity
			prod.Revenue += item.TotalPrice
			prod.Profit += (item.UnitPrice - item.Product.CostPrice) * int64(item.Quantity)

			if item.Product.CategoryID == nil {
				continue
			}

			ck := categoryKey{id: *item.Product.CategoryID, date: date}
			cat, ok := byCategory[ck]
			if !ok {
				cat = &CategorySummary{
					CategoryID:   *item.Product.CategoryID,
					CategoryName: item.Product.CategoryName,
					Date:         date,
				}
				byCategory[ck] = cat
				categoryOrder = append(categoryOrder, ck)
			}
			cat.TotalSales += item.TotalPrice
			cat.TotalItems += item.Quantity
		}
	}

	out := Summaries{
		Daily:      make([]DailySummary, 0, len(dailyOrder)),
		ByProduct:  make([]ProductSummary, 0, len(productOrder)),
		ByCategory: make([]CategorySummary, 0, len(categoryOrder)),
	}
	for _, k := range dailyOrder {
		out.Daily = append(out.Daily, *daily[k])
	}
	for _, k := range productOrder {
		out.ByProduct = append(out.ByProduct, *byProduct[k])
	}
	for _, k := range categoryOrder {
		out.ByCategory = append(out.ByCategory, *byCategory[k])
	}
	return out
}
