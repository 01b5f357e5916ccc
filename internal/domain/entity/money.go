package entity

import "github.com/shopspring/decimal"

func init() {
	// The billing API reads money as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
