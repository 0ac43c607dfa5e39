package handler

import (
	"net/http"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomersHandler struct{ svc service.CustomerService }

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// List godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.CustomerListResponse
// @Security BearerAuth
// @Router /api/customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	var filter dto.PageFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter.Skip, filter.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Fetch a single customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer id"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/customers/{id} [get]
func (h *CustomersHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid customer id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
