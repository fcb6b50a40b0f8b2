package repository

import (
	"context"

	"github.com/sarisense/sarisense-api/internal/analytics"
)

// AnalyticsRepository loads the raw inputs for the pure analytics core.
// Aggregation and recommendation logic live in the analytics package, not in
// SQL, so these methods only project entities into plain rows.
type AnalyticsRepository interface {
	// FetchSaleRows returns the most recent sale transactions with their line
	// items and product/category references, oldest first. A limit of 0 means
	// no limit.
	FetchSaleRows(ctx context.Context, limit int) ([]analytics.SaleRow, error)

	// FetchProductStocks returns stock levels for all active products
	FetchProductStocks(ctx context.Context) ([]analytics.ProductStock, error)

	// FetchAccountHistories returns active customers with their credit history
	// for risk classification
	FetchAccountHistories(ctx context.Context) ([]analytics.AccountHistory, error)
}
