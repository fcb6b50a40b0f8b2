package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	domainRepo "github.com/sarisense/sarisense-api/internal/domain/repository"
	"gorm.io/gorm"
)

type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *gorm.DB) domainRepo.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) Create(ctx context.Context, credit *entity.Credit) error {
	return r.db.WithContext(ctx).Create(credit).Error
}

func (r *creditRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Credit, error) {
	var credit entity.Credit
	err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&credit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &credit, err
}

func (r *creditRepository) Update(ctx context.Context, credit *entity.Credit) error {
	return r.db.WithContext(ctx).Save(credit).Error
}

func (r *creditRepository) List(ctx context.Context, params *domainRepo.CreditFilterParams) ([]entity.Credit, int64, error) {
	var credits []entity.Credit
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Credit{})

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&credits).Error

	return credits, total, err
}

func (r *creditRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Credit, error) {
	var credits []entity.Credit
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&credits).Error
	return credits, err
}

// OutstandingBalance sums pending and overdue amounts for a customer
func (r *creditRepository) OutstandingBalance(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).Model(&entity.Credit{}).
		Where("customer_id = ? AND status IN ?", customerID,
			[]enum.PaymentStatus{enum.PaymentStatusPending, enum.PaymentStatusOverdue}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	return balance, err
}

// SettleOutstanding marks every pending and overdue credit as paid in one
// statement so a partial settlement is impossible.
func (r *creditRepository) SettleOutstanding(ctx context.Context, customerID uuid.UUID, paidDate time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Credit{}).
		Where("customer_id = ? AND status IN ?", customerID,
			[]enum.PaymentStatus{enum.PaymentStatusPending, enum.PaymentStatusOverdue}).
		Updates(map[string]interface{}{
			"status":    enum.PaymentStatusPaid,
			"paid_date": paidDate,
		})
	return result.RowsAffected, result.Error
}

// MarkOverdue flips pending credits past their due date to overdue
func (r *creditRepository) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Credit{}).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", enum.PaymentStatusPending, cutoff).
		Update("status", enum.PaymentStatusOverdue)
	return result.RowsAffected, result.Error
}
