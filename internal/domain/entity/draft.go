package entity

import "github.com/shopspring/decimal"

// LineItem is one product row of an invoice draft. Amount is always
// Quantity × UnitPrice.
type LineItem struct {
	Key         string          `json:"key"`
	ProductID   int             `json:"productId"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Totals are the derived amounts of a draft
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// InvoiceDraft is a snapshot of an invoice being built
type InvoiceDraft struct {
	ClientID   *int       `json:"clientId"`
	SellerID   *int       `json:"sellerId"`
	Comment    string     `json:"comment"`
	Search     string     `json:"search"`
	Items      []LineItem `json:"items"`
	Totals     Totals     `json:"totals"`
	Submitting bool       `json:"submitting"`
}
