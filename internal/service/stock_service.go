package service

import (
	"context"
	"fmt"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/worker"

	"github.com/google/uuid"
)

// StockService manages the inventory ledger.
type StockService interface {
	Create(ctx context.Context, req dto.StockItemRequest) (*dto.StockItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.StockItemRequest) (*dto.StockItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter dto.StockItemFilter) (*dto.StockItemListResponse, error)
	RecordPurchase(ctx context.Context, id uuid.UUID, req dto.StockPurchaseRequest) (*dto.StockItemResponse, error)
}

type stockService struct {
	repo       repository.StockItemRepository
	dispatcher *worker.Dispatcher
	alertEmail string
}

func NewStockService(repo repository.StockItemRepository, dispatcher *worker.Dispatcher, alertEmail string) StockService {
	return &stockService{repo: repo, dispatcher: dispatcher, alertEmail: alertEmail}
}

func (s *stockService) Create(ctx context.Context, req dto.StockItemRequest) (*dto.StockItemResponse, error) {
	item := &model.StockItem{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		CostPerUnit:       req.CostPerUnit,
		LowStockThreshold: req.LowStockThreshold,
		SellingPrice:      req.SellingPrice,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return stockItemToResponse(item), nil
}

func (s *stockService) Update(ctx context.Context, id uuid.UUID, req dto.StockItemRequest) (*dto.StockItemResponse, error) {
	item := &model.StockItem{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		CostPerUnit:       req.CostPerUnit,
		LowStockThreshold: req.LowStockThreshold,
		SellingPrice:      req.SellingPrice,
	}
	if err := s.repo.Replace(ctx, id, item); err != nil {
		return nil, apierror.NotFound("Stock item not found")
	}
	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.maybeAlertLowStock(ctx, updated)
	return stockItemToResponse(updated), nil
}

func (s *stockService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.NotFound("Stock item not found")
	}
	return nil
}

func (s *stockService) List(ctx context.Context, filter dto.StockItemFilter) (*dto.StockItemListResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	results := make([]dto.StockItemResponse, 0, len(items))
	for i := range items {
		results = append(results, *stockItemToResponse(&items[i]))
	}
	return &dto.StockItemListResponse{Results: results, Total: total}, nil
}

// RecordPurchase applies a replenishment to a stock item and recomputes the
// weighted-average cost per unit:
//
//	avg = (old_qty*old_cost + added_qty*purchase_cost) / (old_qty + added_qty)
//
// A purchase with quantity_added <= 0 leaves quantity and cost untouched.
//
// The read and the write are two separate store calls with no transaction or
// compare-and-swap between them. Two concurrent purchases on the same item
// can both observe the same starting state and the second write wins,
// silently dropping the first purchase's contribution. This lost-update
// window is an accepted property of the ledger, inherited from the system it
// replaces — do not "fix" it here without revisiting the concurrency
// contract as a whole.
func (s *stockService) RecordPurchase(ctx context.Context, id uuid.UUID, req dto.StockPurchaseRequest) (*dto.StockItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Stock item not found")
	}

	totalQty := item.Quantity
	avgCost := item.CostPerUnit
	if req.QuantityAdded.IsPositive() {
		totalQty = item.Quantity.Add(req.QuantityAdded)
		if totalQty.IsPositive() {
			avgCost = item.Quantity.Mul(item.CostPerUnit).
				Add(req.QuantityAdded.Mul(req.CostPerUnit)).
				Div(totalQty)
		} else {
			avgCost = req.CostPerUnit
		}
	}

	if err := s.repo.UpdateQuantityCost(ctx, id, totalQty, avgCost); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.maybeAlertLowStock(ctx, updated)
	return stockItemToResponse(updated), nil
}

// maybeAlertLowStock enqueues an alert email when the item sits at or under
// its threshold. Best effort: a full queue or missing dispatcher never fails
// the mutation that triggered the check.
func (s *stockService) maybeAlertLowStock(ctx context.Context, item *model.StockItem) {
	if s.dispatcher == nil || s.alertEmail == "" {
		return
	}
	if item.Quantity.GreaterThan(item.LowStockThreshold) {
		return
	}
	_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: s.alertEmail,
		Subject: fmt.Sprintf("Low stock: %s", item.Name),
		Body: fmt.Sprintf("%s is down to %s %s (threshold %s %s). Time to reorder.",
			item.Name, item.Quantity.String(), item.Unit,
			item.LowStockThreshold.String(), item.Unit),
	})
}

func stockItemToResponse(item *model.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:                item.ID.String(),
		Name:              item.Name,
		Category:          item.Category,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		CostPerUnit:       item.CostPerUnit,
		LowStockThreshold: item.LowStockThreshold,
		SellingPrice:      item.SellingPrice,
	}
}
