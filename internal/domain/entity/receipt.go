package entity

import "github.com/shopspring/decimal"

// ReceiptLine is one printed invoice line.
type ReceiptLine struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Receipt is an invoice laid out for a receipt printer. It is built at
// print time and never stored.
type Receipt struct {
	Header    string          `json:"header"`
	InvoiceID int             `json:"invoice_id"`
	Date      string          `json:"date"`
	Client    string          `json:"client"`
	Seller    string          `json:"seller"`
	Comment   string          `json:"comment,omitempty"`
	Lines     []ReceiptLine   `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}
