package handler

import (
	"net/http"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoicesHandler struct{ svc service.InvoiceService }

func NewInvoicesHandler(svc service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// List godoc
// @Summary List invoices, newest first
// @Tags invoices
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.InvoiceListResponse
// @Security BearerAuth
// @Router /api/invoices [get]
func (h *InvoicesHandler) List(c *gin.Context) {
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

// Create godoc
// @Summary Issue a new invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param body body dto.InvoiceDraft true "Invoice draft"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var draft dto.InvoiceDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Revise godoc
// @Summary Replace an invoice, preserving its invoice number
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice id"
// @Param body body dto.InvoiceDraft true "Invoice draft"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/invoices/{invoice_id} [put]
func (h *InvoicesHandler) Revise(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid invoice id"))
		return
	}
	var draft dto.InvoiceDraft
	if !bindAndValidate(c, &draft) {
		return
	}
	resp, err := h.svc.Revise(c.Request.Context(), id, draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF godoc
// @Summary Render an invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param invoice_id path string true "Invoice id"
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/invoices/{invoice_id}/pdf [get]
func (h *InvoicesHandler) DownloadPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid invoice id"))
		return
	}
	path, err := h.svc.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "invoice.pdf")
}

// Send godoc
// @Summary Email an invoice PDF to the customer
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice id"
// @Param body body dto.SendInvoiceRequest true "Recipient"
// @Success 202 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/invoices/{invoice_id}/send [post]
func (h *InvoicesHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid invoice id"))
		return
	}
	var req dto.SendInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Send(c.Request.Context(), id, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Invoice queued for delivery"})
}
