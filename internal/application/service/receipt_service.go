package service

import (
	"context"
	"fmt"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/printer"
	"go.uber.org/zap"
)

// ReceiptService lays invoices out for a receipt printer and sends them.
type ReceiptService struct {
	printer     printer.Printer
	invoiceRepo repository.InvoiceRepository
	tax         TaxPolicy
	header      string
	width       int
	logger      *zap.Logger
}

// ReceiptConfig holds the printed layout settings.
type ReceiptConfig struct {
	Header string
	Width  int
	Tax    TaxPolicy
}

// NewReceiptService creates a new receipt service
func NewReceiptService(p printer.Printer, invoiceRepo repository.InvoiceRepository, cfg ReceiptConfig, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		printer:     p,
		invoiceRepo: invoiceRepo,
		tax:         cfg.Tax,
		header:      cfg.Header,
		width:       cfg.Width,
		logger:      logger,
	}
}

// PrinterStatus describes the configured printer.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Ready      bool   `json:"ready"`
	Kind       string `json:"kind"`
}

// Status reports whether a printer is configured and reachable.
func (s *ReceiptService) Status(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != printer.KindNone,
		Ready:      s.printer.Ready(ctx),
		Kind:       kind,
	}
}

// BuildReceipt fetches an invoice and lays it out. Tax is derived from the
// line amounts with the same policy the draft uses.
func (s *ReceiptService) BuildReceipt(ctx context.Context, invoiceID int) (*entity.Receipt, error) {
	detail, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	totals := s.tax.Totals(detail.Total())
	receipt := &entity.Receipt{
		Header:    s.header,
		InvoiceID: detail.ID,
		Date:      detail.Date,
		Client:    detail.Client,
		Seller:    detail.Seller,
		Comment:   deref(detail.Comment),
		Lines:     make([]entity.ReceiptLine, 0, len(detail.Lines)),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
	if t, ok := detail.IssuedAt(); ok {
		receipt.Date = t.Format("2006-01-02 15:04")
	}
	for _, l := range detail.Lines {
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
		})
	}
	return receipt, nil
}

// PrintInvoice prints one invoice. When the printer fails the laid out
// receipt is still returned together with the error.
func (s *ReceiptService) PrintInvoice(ctx context.Context, invoiceID int) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.width)); err != nil {
		s.logger.Warn("receipt not printed",
			zap.Int("invoice_id", invoiceID),
			zap.String("printer", s.printer.Kind()),
			zap.Error(err),
		)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	s.logger.Info("receipt printed", zap.Int("invoice_id", invoiceID))
	return receipt, nil
}

// FormatReceipt renders r as an ESC/POS job for paper of the given width.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeDouble).
		Line(r.Header).
		Size(printer.SizeNormal).
		Bold(false).
		Align(printer.AlignLeft).
		Rule('-')

	doc.Pair("Invoice:", fmt.Sprintf("#%d", r.InvoiceID)).
		Pair("Date:", r.Date).
		Pair("Client:", r.Client).
		Pair("Seller:", r.Seller)
	if r.Comment != "" {
		doc.Line(r.Comment)
	}
	doc.Rule('-')

	for _, l := range r.Lines {
		doc.Pair(fmt.Sprintf("%dx %s", l.Quantity, l.Description), l.Amount.StringFixed(2))
		if l.Quantity > 1 {
			doc.Line("  @ " + l.UnitPrice.StringFixed(2))
		}
	}
	doc.Rule('-')

	doc.Pair("Subtotal:", r.Subtotal.StringFixed(2)).
		Pair("ITBIS:", r.Tax.StringFixed(2)).
		Bold(true).
		Pair("TOTAL:", r.Total.StringFixed(2)).
		Bold(false).
		Rule('-')

	doc.Align(printer.AlignCenter).
		Feed(1).
		Line("Thank you for your business!").
		Align(printer.AlignLeft).
		Feed(3).
		Cut()

	return doc.Bytes()
}
