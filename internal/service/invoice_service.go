package service

import (
	"context"
	"fmt"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/infra"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/worker"

	"github.com/google/uuid"
)

// InvoiceService composes invoices: customer resolution, number allocation,
// assembly, persistence, revision, and receipt delivery.
type InvoiceService interface {
	Create(ctx context.Context, draft dto.InvoiceDraft) (*dto.InvoiceResponse, error)
	Revise(ctx context.Context, id uuid.UUID, draft dto.InvoiceDraft) (*dto.InvoiceResponse, error)
	List(ctx context.Context, skip, limit int) (*dto.InvoiceListResponse, error)
	GeneratePDF(ctx context.Context, id uuid.UUID) (string, error)
	Send(ctx context.Context, id uuid.UUID, toEmail string) error
}

type invoiceService struct {
	repo       repository.InvoiceRepository
	customers  CustomerService
	sequence   InvoiceNumberAllocator
	dispatcher *worker.Dispatcher
	pdfPath    string
}

func NewInvoiceService(
	repo repository.InvoiceRepository,
	customers CustomerService,
	sequence InvoiceNumberAllocator,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) InvoiceService {
	return &invoiceService{
		repo:       repo,
		customers:  customers,
		sequence:   sequence,
		dispatcher: dispatcher,
		pdfPath:    pdfPath,
	}
}

// Create issues a new invoice:
//  1. Resolve the customer (existing reference or inline creation).
//  2. Allocate the next invoice number.
//  3. Assemble the document — items and totals are copied verbatim from the
//     draft, never recomputed or cross-checked server-side.
//  4. Persist.
//
// A failed resolution aborts before any invoice write. If the resolution
// inserted a new customer and a later step fails, that customer record stays
// behind — a known partial-failure gap, accepted as-is.
func (s *invoiceService) Create(ctx context.Context, draft dto.InvoiceDraft) (*dto.InvoiceResponse, error) {
	customerID, customerName, err := s.customers.Resolve(ctx, draft)
	if err != nil {
		return nil, err
	}

	number, err := s.sequence.Next(ctx)
	if err != nil {
		return nil, err
	}

	inv := buildInvoice(draft, number, customerID, customerName)
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// Revise replaces an invoice wholesale while preserving its identity and its
// invoice number. Customer resolution follows the same rules as Create — a
// revision without a customerId inserts a brand-new customer rather than
// reusing one. The current number is read first (an absent invoice reads as
// "") and the update is attempted regardless; only a zero-row match fails.
func (s *invoiceService) Revise(ctx context.Context, id uuid.UUID, draft dto.InvoiceDraft) (*dto.InvoiceResponse, error) {
	customerID, customerName, err := s.customers.Resolve(ctx, draft)
	if err != nil {
		return nil, err
	}

	number := ""
	if existing, findErr := s.repo.FindByID(ctx, id); findErr == nil {
		number = existing.InvoiceNumber
	}

	inv := buildInvoice(draft, number, customerID, customerName)
	if err := s.repo.Replace(ctx, id, inv); err != nil {
		return nil, apierror.NotFound("Invoice not found")
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(updated), nil
}

func (s *invoiceService) List(ctx context.Context, skip, limit int) (*dto.InvoiceListResponse, error) {
	if limit < 1 {
		limit = 10
	}
	invoices, total, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	results := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		results = append(results, *invoiceToResponse(&invoices[i]))
	}
	return &dto.InvoiceListResponse{Results: results, Total: total}, nil
}

func (s *invoiceService) GeneratePDF(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", apierror.NotFound("Invoice not found")
	}
	return infra.GenerateInvoicePDF(inv, s.pdfPath)
}

// Send renders the invoice PDF and queues it for email delivery. Delivery is
// asynchronous; a queued job that later fails ends up in the DLQ, it does not
// surface here.
func (s *invoiceService) Send(ctx context.Context, id uuid.UUID, toEmail string) error {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Invoice not found")
	}
	pdfPath, err := infra.GenerateInvoicePDF(inv, s.pdfPath)
	if err != nil {
		return err
	}
	if s.dispatcher == nil {
		return nil
	}
	return s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail:        toEmail,
		Subject:        fmt.Sprintf("Whisk & Whisk invoice %s", inv.InvoiceNumber),
		Body:           fmt.Sprintf("Dear %s,\n\nPlease find invoice %s attached.\n\nWhisk & Whisk Pastry Shop", inv.CustomerName, inv.InvoiceNumber),
		AttachmentPath: pdfPath,
	})
}

func buildInvoice(draft dto.InvoiceDraft, number string, customerID uuid.UUID, customerName string) *model.Invoice {
	items := make([]model.InvoiceItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		items = append(items, model.InvoiceItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			GST:         it.GST,
		})
	}
	return &model.Invoice{
		InvoiceNumber: number,
		CustomerID:    customerID,
		CustomerName:  customerName,
		Date:          draft.Date,
		Items:         items,
		Subtotal:      draft.Subtotal,
		Discount:      draft.Discount,
		GST:           draft.GST,
		Total:         draft.Total,
		PaymentStatus: draft.PaymentStatus,
		OrderType:     draft.OrderType,
		Notes:         draft.Notes,
		AmountPaid:    draft.AmountPaid,
	}
}

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemDTO, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Discount:    it.Discount,
			GST:         it.GST,
		})
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID.String(),
		CustomerName:  inv.CustomerName,
		Date:          inv.Date,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Discount:      inv.Discount,
		GST:           inv.GST,
		Total:         inv.Total,
		PaymentStatus: inv.PaymentStatus,
		OrderType:     inv.OrderType,
		Notes:         inv.Notes,
		AmountPaid:    inv.AmountPaid,
	}
}
