package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// InvoiceSheet is the worksheet name of the invoice export
const InvoiceSheet = "Invoices"

var invoiceColumns = []interface{}{"ID", "Client", "Seller", "Date", "Comment", "Total"}

// InvoiceService reads invoices and renders them as documents
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	tax         TaxPolicy
	logger      *zap.Logger
}

// NewInvoiceService creates a new invoice service. tax is the policy the
// printed documents derive ITBIS with.
func NewInvoiceService(invoiceRepo repository.InvoiceRepository, tax TaxPolicy, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		tax:         tax,
		logger:      logger,
	}
}

// GetByID returns one invoice with its lines.
func (s *InvoiceService) GetByID(ctx context.Context, id int) (*entity.InvoiceDetail, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

// SubmitDraft submits the workspace's draft. Every outcome is reported as a
// notice; on success the invoice list is reloaded if it was loaded before.
func (s *InvoiceService) SubmitDraft(ctx context.Context, ws *Workspace) error {
	if err := ws.Draft.Submit(ctx); err != nil {
		ws.Notices.Error("Could not create invoice: " + err.Error())
		return err
	}

	ws.Notices.Info("Invoice created")
	if ws.Invoices.Loaded() {
		_ = ws.Invoices.Load(ctx)
	}
	return nil
}

// ExportXLSX writes the workspace's invoice list as a workbook. An empty
// list is rejected.
func (s *InvoiceService) ExportXLSX(ctx context.Context, ws *Workspace) ([]byte, error) {
	if err := ws.Invoices.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	invoices := ws.Invoices.Items()
	if len(invoices) == 0 {
		return nil, apperror.NewBadRequestError("There are no invoices to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", InvoiceSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(InvoiceSheet, "A1", &invoiceColumns); err != nil {
		return nil, err
	}

	for i, inv := range invoices {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{inv.ID, inv.Client, inv.Seller, inv.Date, deref(inv.Comment), inv.Total.InexactFloat64()}
		if err := f.SetSheetRow(InvoiceSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoices exported", zap.Int("count", len(invoices)))
	return buf.Bytes(), nil
}

// RenderPDF renders one invoice with its lines as an A4 document.
func (s *InvoiceService) RenderPDF(ctx context.Context, id int) ([]byte, error) {
	detail, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Invoice #%d", detail.ID))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Client: "+detail.Client)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Seller: "+detail.Seller)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+detail.Date)
	pdf.Ln(6)
	if detail.Comment != nil && *detail.Comment != "" {
		pdf.Cell(0, 6, "Comment: "+*detail.Comment)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	widths := []float64{20, 80, 20, 35, 35}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Article", "Description", "Qty", "Unit price", "Amount"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, l := range detail.Lines {
		pdf.CellFormat(widths[0], 6, fmt.Sprint(l.ArticleID), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 6, l.Description, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprint(l.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, l.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, l.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	labelWidth := widths[0] + widths[1] + widths[2] + widths[3]
	for _, row := range s.totalRows(detail) {
		style := ""
		if row.label == "Total" {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(labelWidth, 7, row.label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, row.amount, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type totalRow struct {
	label  string
	amount string
}

// totalRows are the summary lines under an invoice's table: the line sum,
// ITBIS on it and the grand total, as the receipt prints them.
func (s *InvoiceService) totalRows(detail *entity.InvoiceDetail) []totalRow {
	totals := s.tax.Totals(detail.Total())
	return []totalRow{
		{label: "Subtotal", amount: totals.Subtotal.StringFixed(2)},
		{label: "ITBIS", amount: totals.Tax.StringFixed(2)},
		{label: "Total", amount: totals.Total.StringFixed(2)},
	}
}
