package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock item categories used by the shop. Category is free-form — other
// values are accepted and stored as-is.
const (
	CategoryIngredient      = "Ingredient"
	CategoryFinishedProduct = "Finished Product"
	CategoryPackaging       = "Packaging"
)

// StockItem is a purchasable/sellable inventory record.
// CostPerUnit is the volume-weighted average of all historical purchases,
// NOT the latest purchase price; RecordPurchase owns the recalculation.
// Invariant: Quantity >= 0.
type StockItem struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string           `gorm:"index;not null"`
	Category          string           `gorm:"not null"`
	Quantity          decimal.Decimal  `gorm:"type:decimal(14,3);not null;default:0"`
	Unit              string           `gorm:"not null;default:'pcs'"`
	CostPerUnit       decimal.Decimal  `gorm:"type:decimal(14,4);not null;default:0"`
	LowStockThreshold decimal.Decimal  `gorm:"type:decimal(14,3);not null;default:0"`
	SellingPrice      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
