package repository

import (
	"context"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StockItemRepository interface {
	Create(ctx context.Context, item *model.StockItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error)
	List(ctx context.Context, filter dto.StockItemFilter) ([]model.StockItem, int64, error)
	Replace(ctx context.Context, id uuid.UUID, item *model.StockItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateQuantityCost writes the two mutable purchase-derived columns.
	// Deliberately a plain overwrite, not an atomic increment: the stock
	// ledger's read-modify-write sequence is the documented concurrency
	// contract and must not be hardened here.
	UpdateQuantityCost(ctx context.Context, id uuid.UUID, quantity, costPerUnit decimal.Decimal) error
}

type stockItemRepo struct{ db *gorm.DB }

func NewStockItemRepository(db *gorm.DB) StockItemRepository { return &stockItemRepo{db: db} }

func (r *stockItemRepo) Create(ctx context.Context, item *model.StockItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *stockItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockItem, error) {
	var item model.StockItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *stockItemRepo) List(ctx context.Context, filter dto.StockItemFilter) ([]model.StockItem, int64, error) {
	var items []model.StockItem
	var total int64

	q := r.db.WithContext(ctx).Model(&model.StockItem{})
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *stockItemRepo) Replace(ctx context.Context, id uuid.UUID, item *model.StockItem) error {
	res := r.db.WithContext(ctx).Model(&model.StockItem{}).Where("id = ?", id).
		Select("name", "category", "quantity", "unit", "cost_per_unit", "low_stock_threshold", "selling_price").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stockItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.StockItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stockItemRepo) UpdateQuantityCost(ctx context.Context, id uuid.UUID, quantity, costPerUnit decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.StockItem{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":      quantity,
			"cost_per_unit": costPerUnit,
		}).Error
}
