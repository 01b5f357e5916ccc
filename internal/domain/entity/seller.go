package entity

import (
	"github.com/billerone/billerone-web/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Seller represents a salesperson an invoice is attributed to
type Seller struct {
	ID            int              `json:"VendedorID,omitempty"`
	Name          string           `json:"Nombre"`
	CommissionPct *decimal.Decimal `json:"PorcentajeComision,omitempty"`
	Status        *enum.Status     `json:"Estado,omitempty"`
}

// NewSellerForm returns the defaults of an empty seller form.
func NewSellerForm() Seller {
	zero := decimal.Zero
	return Seller{
		CommissionPct: &zero,
		Status:        enum.StatusPtr(enum.StatusActive),
	}
}
