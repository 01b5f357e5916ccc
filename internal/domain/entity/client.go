package entity

import "github.com/billerone/billerone-web/internal/domain/enum"

// Client represents a billed customer
type Client struct {
	ID            int          `json:"ClienteID,omitempty"`
	Name          string       `json:"NombreComercial"`
	NationalID    string       `json:"RNC_Cedula"`
	LedgerAccount *string      `json:"CuentaContable,omitempty"`
	Status        *enum.Status `json:"Estado,omitempty"`
}

// NewClientForm returns the defaults of an empty client form.
func NewClientForm() Client {
	return Client{Status: enum.StatusPtr(enum.StatusActive)}
}
