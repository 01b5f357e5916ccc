package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

var invoiceDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Invoice represents an invoice as listed by the billing API
type Invoice struct {
	ID       int             `json:"FacturaID"`
	ClientID int             `json:"ClienteID"`
	Client   string          `json:"Cliente"`
	SellerID int             `json:"VendedorID"`
	Seller   string          `json:"Vendedor"`
	Date     string          `json:"Fecha"`
	Comment  *string         `json:"Comentario"`
	Total    decimal.Decimal `json:"Total"`
}

// IssuedAt parses the invoice date. The API has used several layouts.
func (i Invoice) IssuedAt() (time.Time, bool) {
	return parseInvoiceDate(i.Date)
}

// InvoiceDetail is a single invoice with its lines
type InvoiceDetail struct {
	ID       int           `json:"FacturaID"`
	ClientID int           `json:"ClienteID"`
	Client   string        `json:"Cliente"`
	SellerID int           `json:"VendedorID"`
	Seller   string        `json:"Vendedor"`
	Date     string        `json:"Fecha"`
	Comment  *string       `json:"Comentario"`
	Lines    []InvoiceLine `json:"Detalle"`
}

// IssuedAt parses the invoice date.
func (d InvoiceDetail) IssuedAt() (time.Time, bool) {
	return parseInvoiceDate(d.Date)
}

// Total sums the line amounts.
func (d InvoiceDetail) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

// InvoiceLine represents a persisted invoice line
type InvoiceLine struct {
	ID          int             `json:"DetalleID"`
	ArticleID   int             `json:"ArticuloID"`
	Description string          `json:"Descripcion"`
	Quantity    int             `json:"Cantidad"`
	UnitPrice   decimal.Decimal `json:"PrecioUnitario"`
	Amount      decimal.Decimal `json:"Importe"`
}

// CreateInvoiceRequest is the body of an invoice creation. Line amounts are
// not sent; the API recomputes them.
type CreateInvoiceRequest struct {
	ClientID int                  `json:"ClienteID"`
	SellerID int                  `json:"VendedorID"`
	Comment  *string              `json:"Comentario"`
	Lines    []InvoiceLineRequest `json:"Detalle"`
}

// InvoiceLineRequest is one {product, quantity, price} triple
type InvoiceLineRequest struct {
	ArticleID int             `json:"ArticuloID"`
	Quantity  int             `json:"Cantidad"`
	UnitPrice decimal.Decimal `json:"PrecioUnitario"`
}

func parseInvoiceDate(s string) (time.Time, bool) {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
