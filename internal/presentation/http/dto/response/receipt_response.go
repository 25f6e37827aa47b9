package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/okushnir/checkline-api/internal/domain/entity"
)

// ReceiptItemResponse represents a purchased line in API responses
type ReceiptItemResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// ReceiptPaymentResponse represents the payment of a receipt
type ReceiptPaymentResponse struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// ReceiptResponse represents a receipt in API responses
type ReceiptResponse struct {
	ID        uuid.UUID              `json:"id"`
	Products  []ReceiptItemResponse  `json:"products"`
	Payment   ReceiptPaymentResponse `json:"payment"`
	Total     decimal.Decimal        `json:"total"`
	Rest      decimal.Decimal        `json:"rest"`
	CreatedAt time.Time              `json:"created_at"`
	PublicURL string                 `json:"public_url"`
}

// NewReceiptResponse converts a receipt entity with its associations loaded
func NewReceiptResponse(receipt *entity.Receipt) *ReceiptResponse {
	products := make([]ReceiptItemResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		products = append(products, ReceiptItemResponse{
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}

	return &ReceiptResponse{
		ID:       receipt.ID,
		Products: products,
		Payment: ReceiptPaymentResponse{
			Type:   receipt.Payment.Type.String(),
			Amount: receipt.Payment.Amount,
		},
		Total:     receipt.Total,
		Rest:      receipt.Payment.Rest,
		CreatedAt: receipt.CreatedAt,
		PublicURL: "/api/v1/receipts/" + receipt.ID.String() + "/public",
	}
}

// NewReceiptListResponse converts a slice of receipt entities
func NewReceiptListResponse(receipts []entity.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, *NewReceiptResponse(&receipts[i]))
	}
	return out
}
