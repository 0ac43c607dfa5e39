package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const stockCacheTTL = 60 * time.Second

type StockItemsHandler struct {
	svc service.StockService
	rdb *redis.Client
}

func NewStockItemsHandler(svc service.StockService, rdb *redis.Client) *StockItemsHandler {
	return &StockItemsHandler{svc: svc, rdb: rdb}
}

// List godoc
// @Summary List stock items
// @Tags stock
// @Produce json
// @Param search query string false "Name substring"
// @Param category query string false "Category filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.StockItemListResponse
// @Security BearerAuth
// @Router /api/stock_items [get]
func (h *StockItemsHandler) List(c *gin.Context) {
	var filter dto.StockItemFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPublic is the unauthenticated storefront listing. Same filters as
// List, served through a short-TTL Redis cache because the storefront
// polls it; the cache is best effort and a miss falls through to the DB.
func (h *StockItemsHandler) ListPublic(c *gin.Context) {
	var filter dto.StockItemFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("stock_public:%s:%s:%d:%d",
		filter.Search, filter.Category, filter.Skip, filter.Limit)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.StockItemListResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, stockCacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param body body dto.StockItemRequest true "Stock item"
// @Success 200 {object} dto.StockItemResponse
// @Security BearerAuth
// @Router /api/stock_items [post]
func (h *StockItemsHandler) Create(c *gin.Context) {
	var req dto.StockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param item_id path string true "Stock item id"
// @Param body body dto.StockItemRequest true "Stock item"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/stock_items/{item_id} [put]
func (h *StockItemsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid stock item id"))
		return
	}
	var req dto.StockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a stock item
// @Tags stock
// @Produce json
// @Param item_id path string true "Stock item id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/stock_items/{item_id} [delete]
func (h *StockItemsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid stock item id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// RecordPurchase godoc
// @Summary Record a replenishment purchase for a stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param item_id path string true "Stock item id"
// @Param body body dto.StockPurchaseRequest true "Purchase"
// @Success 200 {object} dto.StockItemResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/stock_items/{item_id}/purchases [post]
func (h *StockItemsHandler) RecordPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid stock item id"))
		return
	}
	var req dto.StockPurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordPurchase(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
