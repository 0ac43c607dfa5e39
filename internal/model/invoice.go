package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItem is a line on an invoice. ProductID is a weak reference to a
// StockItem — no foreign key is enforced. Price, discount and gst are
// trusted as submitted; the server never recomputes them.
type InvoiceItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	GST         decimal.Decimal `json:"gst"`
}

// Invoice is the persisted bill.
//
// InvoiceNumber ("WHISK-NN") is assigned exactly once at creation and carried
// forward unchanged on every revision. CustomerName is a denormalized
// snapshot taken at issuance time — later customer edits do not rewrite it.
// Items are stored as a JSON column and replaced wholesale on revision.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNumber string          `gorm:"index;not null;default:''"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	CustomerName  string          `gorm:"not null"`
	Date          string          `gorm:"index;not null"`
	Items         []InvoiceItem   `gorm:"serializer:json"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GST           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:gst"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentStatus string          `gorm:"not null"`
	OrderType     string          `gorm:"not null"`
	Notes         *string
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"index"`
	UpdatedAt     time.Time
}
