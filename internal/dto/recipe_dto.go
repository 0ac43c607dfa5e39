package dto

import "github.com/shopspring/decimal"

type RecipeIngredientDTO struct {
	StockItemID string          `json:"stockItemId" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type RecipeRequest struct {
	Name         string                `json:"name"         validate:"required,min=1,max=120"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients"  validate:"dive"`
	SellingPrice decimal.Decimal       `json:"sellingPrice" validate:"min=0"`
}

type RecipeFilter struct {
	Search string `form:"search"`
	Skip   int    `form:"skip,default=0"   validate:"min=0"`
	Limit  int    `form:"limit,default=10" validate:"min=1"`
}

type RecipeResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients"`
	SellingPrice decimal.Decimal       `json:"sellingPrice"`
}

type RecipeListResponse struct {
	Results []RecipeResponse `json:"results"`
	Total   int64            `json:"total"`
}
