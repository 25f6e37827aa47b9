package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/okushnir/checkline-api/internal/domain/enum"
)

// Receipt is a finalized purchase record. It is immutable after creation:
// the total is computed once by the ledger and must always equal the sum of
// its item totals.
type Receipt struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:decimal;not null" json:"total"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	User    User          `gorm:"foreignKey:UserID" json:"-"`
	Items   []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
	Payment Payment       `gorm:"foreignKey:ReceiptID" json:"payment"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is one product line on a receipt. Insertion order is
// significant for rendering, rows are read back ordered by creation.
type ReceiptItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  decimal.Decimal `gorm:"type:decimal;not null" json:"quantity"`
	Total     decimal.Decimal `gorm:"type:decimal;not null" json:"total"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}

// Payment records how a receipt was paid. Rest is the change due and goes
// negative when the tendered amount did not cover the total.
type Payment struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID uuid.UUID        `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Type      enum.PaymentType `gorm:"size:32;not null" json:"type"`
	Amount    decimal.Decimal  `gorm:"type:decimal;not null" json:"amount"`
	Rest      decimal.Decimal  `gorm:"type:decimal;not null" json:"rest"`
	CreatedAt time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
