package repository

import (
	"context"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, skip, limit int) ([]model.Invoice, int64, error)

	// FindLatestNumbered returns the most recently created invoice carrying a
	// non-empty invoice number, or (nil, nil) when none exists yet. The
	// sequence allocator derives the next number from it — no dedicated
	// counter, by design.
	FindLatestNumbered(ctx context.Context) (*model.Invoice, error)

	// Replace overwrites every mutable field of the matched invoice,
	// including the items array (wholesale, not merged).
	// Returns gorm.ErrRecordNotFound when no row matched.
	Replace(ctx context.Context, id uuid.UUID, inv *model.Invoice) error
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, skip, limit int) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Invoice{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("date DESC").Offset(skip).Limit(limit).Find(&invoices).Error
	return invoices, total, err
}

func (r *invoiceRepo) FindLatestNumbered(ctx context.Context) (*model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Where("invoice_number <> ''").
		Order("created_at DESC").
		Limit(1).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, nil
	}
	return &invoices[0], nil
}

func (r *invoiceRepo) Replace(ctx context.Context, id uuid.UUID, inv *model.Invoice) error {
	res := r.db.WithContext(ctx).Model(&model.Invoice{}).Where("id = ?", id).
		Select("invoice_number", "customer_id", "customer_name", "date", "items",
			"subtotal", "discount", "gst", "total", "payment_status", "order_type",
			"notes", "amount_paid").
		Updates(inv)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
