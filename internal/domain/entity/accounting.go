package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Accounting entry submission states reported by the API.
const (
	EntryStatusOK    = "OK"
	EntryStatusError = "ERROR"
)

// AccountingEntry is one row of the billing entry history
type AccountingEntry struct {
	ID            int             `json:"id,omitempty"`
	InvoiceID     *int            `json:"facturaid"`
	Amount        decimal.Decimal `json:"amount"`
	Period        string          `json:"period"`
	Description   *string         `json:"description"`
	DebitEntryID  *int            `json:"iso_debit_entry_id"`
	CreditEntryID *int            `json:"iso_credit_entry_id"`
	Status        string          `json:"status"`
	ErrorMessage  *string         `json:"error_message"`
	CreatedAt     string          `json:"created_at"`
}

// EntryRequest posts a billing entry to the accounting module
type EntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period,omitempty"`
	Description string          `json:"description,omitempty"`
	InvoiceID   *int            `json:"invoiceId,omitempty"`
}

// EntryResponse is the accounting module's envelope
type EntryResponse struct {
	IsOk    bool            `json:"isOk"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
