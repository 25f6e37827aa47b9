package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okushnir/checkline-api/internal/domain/entity"
	domainRepo "github.com/okushnir/checkline-api/internal/domain/repository"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create persists the receipt with its items and payment in one transaction.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		First(&receipt, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("receipt_items.created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Payment").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("receipts.user_id = ?", userID)

	if params.StartDate != nil {
		query = query.Where("receipts.created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("receipts.created_at <= ?", *params.EndDate)
	}

	if params.PaymentType != nil {
		query = query.Joins("JOIN payments ON payments.receipt_id = receipts.id").
			Where("payments.type = ?", *params.PaymentType)
	}

	if params.MinTotal != nil {
		query = query.Where("receipts.total >= ?", *params.MinTotal)
	}

	if params.MaxTotal != nil {
		query = query.Where("receipts.total <= ?", *params.MaxTotal)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("receipt_items.created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Payment").
		Order("receipts.created_at DESC").
		Find(&receipts).Error

	return receipts, total, err
}
