package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type StockItemRequest struct {
	Name              string           `json:"name"              validate:"required,min=1,max=120"`
	Category          string           `json:"category"          validate:"required"`
	Quantity          decimal.Decimal  `json:"quantity"          validate:"min=0"`
	Unit              string           `json:"unit"              validate:"required"`
	CostPerUnit       decimal.Decimal  `json:"costPerUnit"       validate:"min=0"`
	LowStockThreshold decimal.Decimal  `json:"lowStockThreshold" validate:"min=0"`
	SellingPrice      *decimal.Decimal `json:"sellingPrice"`
}

// StockPurchaseRequest records a replenishment. quantity_added <= 0 is
// accepted and treated as a no-op, not rejected.
type StockPurchaseRequest struct {
	QuantityAdded decimal.Decimal `json:"quantity_added"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit_of_purchase"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type StockItemFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"` // accepted for compatibility, currently unused
	Skip     int    `form:"skip,default=0"   validate:"min=0"`
	Limit    int    `form:"limit,default=10" validate:"min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StockItemResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Quantity          decimal.Decimal  `json:"quantity"`
	Unit              string           `json:"unit"`
	CostPerUnit       decimal.Decimal  `json:"costPerUnit"`
	LowStockThreshold decimal.Decimal  `json:"lowStockThreshold"`
	SellingPrice      *decimal.Decimal `json:"sellingPrice,omitempty"`
}

type StockItemListResponse struct {
	Results []StockItemResponse `json:"results"`
	Total   int64               `json:"total"`
}
