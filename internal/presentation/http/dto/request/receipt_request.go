package request

import "github.com/shopspring/decimal"

// ReceiptProductRequest is a single purchased line in a receipt
type ReceiptProductRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=128"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// ReceiptPaymentRequest describes how a receipt was paid
type ReceiptPaymentRequest struct {
	Type   string          `json:"type" binding:"required,oneof=cash card"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateReceiptRequest represents the receipt creation request
type CreateReceiptRequest struct {
	Products []ReceiptProductRequest `json:"products" binding:"required,min=1,dive"`
	Payment  ReceiptPaymentRequest   `json:"payment" binding:"required"`
}
