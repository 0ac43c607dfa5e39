package infra

// pdf.go — Invoice PDF generation using go-pdf/fpdf.
// Renders an A5 invoice with the shop header, customer block, line-item
// table, tax/discount summary and payment status. The output file is saved
// to storagePath/invoice_{number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateInvoicePDF renders inv into storagePath (created if needed) and
// returns the absolute path of the written file.
func GenerateInvoicePDF(inv *model.Invoice, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	name := inv.InvoiceNumber
	if name == "" {
		name = inv.ID.String()
	}
	fileName := fmt.Sprintf("invoice_%s.pdf", strings.ReplaceAll(name, "/", "_"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Whisk & Whisk Pastry Shop", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Tax Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Invoice / customer block ─────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW/2, 5, "Invoice "+inv.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 5, "Date: "+inv.Date, "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Billed to: "+inv.CustomerName, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Order: "+inv.OrderType, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.44 // product
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.22 // price
	col4 := contentW * 0.22 // line total

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range inv.Items {
		name := item.ProductName
		if len(name) > 28 {
			name = name[:27] + "…"
		}
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Sub(item.Discount).Add(item.GST)
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, item.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, lineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Summary ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(col1+col2+col3, 5, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, inv.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !inv.Discount.IsZero() {
		pdf.CellFormat(col1+col2+col3, 5, "Discount:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "-"+inv.Discount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(col1+col2+col3, 5, "GST:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, inv.GST.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3, 6, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, inv.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(col1+col2+col3, 5, "Paid ("+inv.PaymentStatus+"):", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, inv.AmountPaid.StringFixed(2), "", 1, "R", false, 0, "")

	if inv.Notes != nil && *inv.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, "Notes: "+*inv.Notes, "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, "Thank you for your order!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
