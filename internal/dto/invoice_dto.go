package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type InvoiceItemDTO struct {
	ProductID   string          `json:"productId"   validate:"required"`
	ProductName string          `json:"productName" validate:"required"`
	Quantity    int             `json:"quantity"    validate:"gt=0"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	GST         decimal.Decimal `json:"gst"`
}

// InvoiceDraft is the create/revise body. Either CustomerID references an
// existing customer, or the inline Customer* fields describe a brand-new one
// (name + phone required). Phone is the legacy field name some clients still
// send instead of CustomerPhone.
type InvoiceDraft struct {
	CustomerID          *string `json:"customerId"`
	CustomerName        *string `json:"customerName"`
	CustomerEmail       *string `json:"customerEmail"`
	CustomerPhone       *string `json:"customerPhone"`
	Phone               *string `json:"phone"`
	CustomerAddress     *string `json:"customerAddress"`
	CustomerBirthday    *string `json:"customerBirthday"`
	CustomerAnniversary *string `json:"customerAnniversary"`

	Date          string           `json:"date"          validate:"required"`
	Items         []InvoiceItemDTO `json:"items"         validate:"required,dive"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Discount      decimal.Decimal  `json:"discount"`
	GST           decimal.Decimal  `json:"gst"`
	Total         decimal.Decimal  `json:"total"`
	PaymentStatus string           `json:"paymentStatus" validate:"required"`
	OrderType     string           `json:"orderType"     validate:"required"`
	Notes         *string          `json:"notes"`
	AmountPaid    decimal.Decimal  `json:"amountPaid"`
}

type SendInvoiceRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InvoiceResponse struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	CustomerID    string           `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	Date          string           `json:"date"`
	Items         []InvoiceItemDTO `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Discount      decimal.Decimal  `json:"discount"`
	GST           decimal.Decimal  `json:"gst"`
	Total         decimal.Decimal  `json:"total"`
	PaymentStatus string           `json:"paymentStatus"`
	OrderType     string           `json:"orderType"`
	Notes         *string          `json:"notes"`
	AmountPaid    decimal.Decimal  `json:"amountPaid"`
}

type InvoiceListResponse struct {
	Results []InvoiceResponse `json:"results"`
	Total   int64             `json:"total"`
}
