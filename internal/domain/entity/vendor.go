package entity

import "github.com/shopspring/decimal"

// Vendor represents a supplier the business buys from
type Vendor struct {
	ID      int             `json:"ProveedorID,omitempty"`
	Name    string          `json:"Nombre"`
	TaxID   string          `json:"RNC"`
	Email   *string         `json:"Correo,omitempty"`
	Phone   *string         `json:"Telefono,omitempty"`
	Address *string         `json:"Direccion,omitempty"`
	City    *string         `json:"Ciudad,omitempty"`
	Contact *string         `json:"Contacto,omitempty"`
	Balance decimal.Decimal `json:"Balance"`
}
