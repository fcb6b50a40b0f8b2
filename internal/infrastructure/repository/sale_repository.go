package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	domainRepo "github.com/sarisense/sarisense-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateWithItems persists a sale, its line items and the optional utang row
// in one transaction so a partial checkout never reaches the ledger.
func (r *saleRepository) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem, credit *entity.Credit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		if credit != nil {
			credit.SaleID = &sale.ID
			if err := tx.Create(credit).Error; err != nil {
				return err
			}
		}
		sale.Items = items
		return nil
	})
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Preload("Customer").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}
	if params.TransactionType != nil {
		query = query.Where("transaction_type = ?", *params.TransactionType)
	}
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}
