package service

import (
	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TaxPolicy computes the sales tax (ITBIS) added on top of a subtotal
type TaxPolicy struct {
	Rate   decimal.Decimal
	Places int32
}

// Totals derives tax and total from subtotal. Only the tax is rounded,
// half-up to Places decimals; subtotal and total are left as computed.
func (p TaxPolicy) Totals(subtotal decimal.Decimal) entity.Totals {
	tax := subtotal.Mul(p.Rate).Round(p.Places)
	return entity.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
