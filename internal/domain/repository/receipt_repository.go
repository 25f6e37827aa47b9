package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/okushnir/checkline-api/internal/domain/entity"
	"github.com/okushnir/checkline-api/internal/domain/enum"
	"github.com/okushnir/checkline-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	// Create persists a receipt together with its items and payment.
	Create(ctx context.Context, receipt *entity.Receipt) error
	// GetByID returns a user's receipt without associations, nil when absent.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error)
	// GetWithDetails re-hydrates a receipt with its user, ordered items
	// (including products) and payment, regardless of owner.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// List returns a user's receipts matching the filters, newest first.
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries
type ReceiptFilterParams struct {
	Pagination  *pagination.PaginationParams
	StartDate   *time.Time
	EndDate     *time.Time
	PaymentType *enum.PaymentType
	MinTotal    *decimal.Decimal
	MaxTotal    *decimal.Decimal
}
