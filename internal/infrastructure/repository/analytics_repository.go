package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/analytics"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	domainRepo "github.com/sarisense/sarisense-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// FetchSaleRows loads sales with items and product references and projects
// them into plain rows for the aggregation pass.
func (r *analyticsRepository) FetchSaleRows(ctx context.Context, limit int) ([]analytics.SaleRow, error) {
	var sales []entity.Sale
	query := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Order("created_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}

	rows := make([]analytics.SaleRow, 0, len(sales))
	for _, s := range sales {
		row := analytics.SaleRow{
			ID:          s.ID,
			CreatedAt:   s.CreatedAt,
			TotalAmount: s.TotalAmount,
			Items:       make([]analytics.LineItem, 0, len(s.Items)),
		}
		for _, item := range s.Items {
			li := analytics.LineItem{
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: item.TotalPrice,
			}
			if item.Product.ID != uuid.Nil {
				ref := analytics.ProductRef{
					ID:         item.Product.ID,
					Name:       item.Product.Name,
					CostPrice:  item.Product.CostPrice,
					CategoryID: item.Product.CategoryID,
				}
				if item.Product.Category != nil {
					ref.CategoryName = item.Product.Category.Name
				}
				li.Product = &ref
			}
			row.Items = append(row.Items, li)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *analyticsRepository) FetchProductStocks(ctx context.Context) ([]analytics.ProductStock, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	stocks := make([]analytics.ProductStock, 0, len(products))
	for _, p := range products {
		stocks = append(stocks, analytics.ProductStock{
			ID:           p.ID,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			MinimumStock: p.MinimumStock,
		})
	}
	return stocks, nil
}

func (r *analyticsRepository) FetchAccountHistories(ctx context.Context) ([]analytics.AccountHistory, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Credits").
		Order("name ASC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}

	histories := make([]analytics.AccountHistory, 0, len(customers))
	for _, c := range customers {
		h := analytics.AccountHistory{
			Account: analytics.CustomerAccount{ID: c.ID, Name: c.Name},
			Credits: make([]analytics.CreditRecord, 0, len(c.Credits)),
		}
		for _, cr := range c.Credits {
			h.Credits = append(h.Credits, analytics.CreditRecord{
				Amount:    cr.Amount,
				Status:    cr.Status,
				CreatedAt: cr.CreatedAt,
			})
		}
		histories = append(histories, h)
	}
	return histories, nil
}
