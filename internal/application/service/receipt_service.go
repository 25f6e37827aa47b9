package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/okushnir/checkline-api/internal/config"
	"github.com/okushnir/checkline-api/internal/domain/entity"
	"github.com/okushnir/checkline-api/internal/domain/enum"
	"github.com/okushnir/checkline-api/internal/domain/repository"
	"github.com/okushnir/checkline-api/pkg/apperror"
	"github.com/okushnir/checkline-api/pkg/ledger"
	"github.com/okushnir/checkline-api/pkg/pagination"
	"github.com/okushnir/checkline-api/pkg/render"
)

// ReceiptService handles receipt creation, lookup and rendering
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	productRepo repository.ProductRepository
	receiptCfg  config.ReceiptConfig
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	receiptCfg config.ReceiptConfig,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		productRepo: productRepo,
		receiptCfg:  receiptCfg,
	}
}

// CreateReceiptInput represents one submitted receipt
type CreateReceiptInput struct {
	Products []ProductInput
	Payment  PaymentInput
}

// ProductInput is a single purchased line
type ProductInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// PaymentInput describes how the receipt was paid
type PaymentInput struct {
	Type   string
	Amount decimal.Decimal
}

// CreateReceipt computes the receipt totals, ensures every product exists
// and persists the receipt with its items and payment. Line totals follow
// the stored catalog price: a product that already exists keeps its price
// and the submitted one is ignored, so the rendered unit-price row and the
// item total always agree.
func (s *ReceiptService) CreateReceipt(ctx context.Context, userID uuid.UUID, input *CreateReceiptInput) (*entity.Receipt, error) {
	lines := make([]ledger.Line, 0, len(input.Products))
	for _, p := range input.Products {
		lines = append(lines, ledger.Line{
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  p.Quantity,
		})
	}

	// Validate the submitted values before touching the catalog
	if _, err := ledger.Compute(lines, ledger.PaymentMethod(input.Payment.Type), input.Payment.Amount); err != nil {
		return nil, mapLedgerError(err)
	}

	productIDs := make([]uuid.UUID, len(lines))
	for i := range lines {
		product, err := s.productRepo.GetOrCreateByName(ctx, &entity.Product{
			Name:  lines[i].Name,
			Price: lines[i].UnitPrice,
		})
		if err != nil {
			return nil, err
		}
		productIDs[i] = product.ID
		lines[i].UnitPrice = product.Price
	}

	computation, err := ledger.Compute(lines, ledger.PaymentMethod(input.Payment.Type), input.Payment.Amount)
	if err != nil {
		return nil, mapLedgerError(err)
	}

	items := make([]entity.ReceiptItem, 0, len(computation.Lines))
	for i, line := range computation.Lines {
		items = append(items, entity.ReceiptItem{
			ProductID: productIDs[i],
			Quantity:  line.Quantity,
			Total:     line.Total,
		})
	}

	receipt := &entity.Receipt{
		UserID: userID,
		Total:  computation.Total,
		Items:  items,
		Payment: entity.Payment{
			Type:   enum.PaymentType(computation.Method),
			Amount: computation.Tendered,
			Rest:   computation.Rest,
		},
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	return s.receiptRepo.GetWithDetails(ctx, receipt.ID)
}

// GetReceipt returns a receipt owned by the given user
func (s *ReceiptService) GetReceipt(ctx context.Context, userID, receiptID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return s.receiptRepo.GetWithDetails(ctx, receipt.ID)
}

// ListReceipts returns the user's receipts filtered and paginated
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	params.Pagination.Validate()

	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(receipts, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// RenderPublicReceipt renders the receipt as a fixed-width text document.
// No ownership check: the rendered form is the shareable view of a receipt.
func (s *ReceiptService) RenderPublicReceipt(ctx context.Context, receiptID uuid.UUID) (string, error) {
	receipt, err := s.receiptRepo.GetWithDetails(ctx, receiptID)
	if err != nil {
		return "", err
	}
	if receipt == nil {
		return "", apperror.NewNotFoundError("Receipt")
	}

	items := make([]render.Item, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, render.Item{
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			Total:     item.Total,
		})
	}

	doc := &render.Receipt{
		BuyerName: receipt.User.FullName,
		Items:     items,
		Payment: render.Payment{
			Method: receipt.Payment.Type.String(),
			Amount: receipt.Payment.Amount,
			Rest:   receipt.Payment.Rest,
		},
		Total:     receipt.Total,
		CreatedAt: receipt.CreatedAt,
	}

	return render.Render(doc, render.Config{
		StoreName: s.receiptCfg.StoreName,
		RowWidth:  s.receiptCfg.RowWidth,
		Language:  s.receiptCfg.Language,
		Packs:     render.DefaultPacks(),
	})
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrUnknownPaymentMethod):
		return apperror.NewValidationError("Payment type must be cash or card")
	case errors.Is(err, ledger.ErrInvalidQuantity):
		return apperror.NewValidationError("Product quantity must be positive")
	case errors.Is(err, ledger.ErrInvalidPrice):
		return apperror.NewValidationError("Product price must not be negative")
	case errors.Is(err, ledger.ErrNegativeTendered):
		return apperror.NewValidationError("Payment amount must not be negative")
	default:
		return err
	}
}
