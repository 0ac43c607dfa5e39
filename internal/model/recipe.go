package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeIngredient references a StockItem by id. The reference is weak:
// deleting the stock item does not cascade into recipes.
type RecipeIngredient struct {
	StockItemID string          `json:"stockItemId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// Recipe is a product recipe. Ingredient cost rollups are out of scope;
// the selling price is set by hand.
type Recipe struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string             `gorm:"index;not null"`
	Ingredients  []RecipeIngredient `gorm:"serializer:json"`
	SellingPrice decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
