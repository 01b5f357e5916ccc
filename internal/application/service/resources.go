package service

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/pkg/cedula"
	"github.com/shopspring/decimal"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var hundred = decimal.NewFromInt(100)

// ClientDefinition describes the clients collection. The national id must
// pass the check digit and be unique among loaded clients.
func ClientDefinition() ResourceDefinition[entity.Client] {
	return ResourceDefinition[entity.Client]{
		Singular: "client",
		Plural:   "clients",
		NewForm:  entity.NewClientForm,
		ID:       func(c entity.Client) int { return c.ID },
		SearchText: func(c entity.Client) []string {
			return []string{c.Name, c.NationalID, cedula.Normalize(c.NationalID)}
		},
		Validate:    validateClient,
		ChecksCache: true,
	}
}

func validateClient(c entity.Client, editingID *int, loaded []entity.Client) map[string]string {
	errs := map[string]string{}

	if blank(c.Name) {
		errs["NombreComercial"] = "Name is required"
	}

	switch err := cedula.Validate(c.NationalID); {
	case blank(c.NationalID):
		errs["RNC_Cedula"] = "National id is required"
	case errors.Is(err, cedula.ErrLength):
		errs["RNC_Cedula"] = "National id must have 11 digits"
	case errors.Is(err, cedula.ErrCheckDigit):
		errs["RNC_Cedula"] = "National id is not valid"
	default:
		digits := cedula.Normalize(c.NationalID)
		for _, other := range loaded {
			if editingID != nil && other.ID == *editingID {
				continue
			}
			if cedula.Normalize(other.NationalID) == digits {
				errs["RNC_Cedula"] = "National id is already registered"
				break
			}
		}
	}

	if c.LedgerAccount == nil || blank(*c.LedgerAccount) {
		errs["CuentaContable"] = "Ledger account is required"
	}
	if c.Status == nil {
		errs["Estado"] = "Status is required"
	}
	return errs
}

// SellerDefinition describes the sellers collection
func SellerDefinition() ResourceDefinition[entity.Seller] {
	return ResourceDefinition[entity.Seller]{
		Singular: "seller",
		Plural:   "sellers",
		NewForm:  entity.NewSellerForm,
		ID:       func(s entity.Seller) int { return s.ID },
		SearchText: func(s entity.Seller) []string {
			return []string{s.Name, strconv.Itoa(s.ID)}
		},
		Validate: func(s entity.Seller, _ *int, _ []entity.Seller) map[string]string {
			errs := map[string]string{}
			if blank(s.Name) {
				errs["Nombre"] = "Name is required"
			}
			switch {
			case s.CommissionPct == nil:
				errs["PorcentajeComision"] = "Commission is required"
			case s.CommissionPct.IsNegative() || s.CommissionPct.GreaterThan(hundred):
				errs["PorcentajeComision"] = "Commission must be between 0 and 100"
			}
			if s.Status == nil {
				errs["Estado"] = "Status is required"
			}
			return errs
		},
	}
}

// ArticleDefinition describes the articles collection
func ArticleDefinition() ResourceDefinition[entity.Article] {
	return ResourceDefinition[entity.Article]{
		Singular: "article",
		Plural:   "articles",
		NewForm:  entity.NewArticleForm,
		ID:       func(a entity.Article) int { return a.ID },
		SearchText: func(a entity.Article) []string {
			return []string{a.Description, strconv.Itoa(a.ID)}
		},
		Validate: func(a entity.Article, _ *int, _ []entity.Article) map[string]string {
			errs := map[string]string{}
			if blank(a.Description) {
				errs["Descripcion"] = "Description is required"
			}
			if a.UnitPrice == nil || !a.UnitPrice.IsPositive() {
				errs["PrecioUnitario"] = "Unit price must be greater than 0"
			}
			return errs
		},
	}
}

// VendorDefinition describes the vendors collection
func VendorDefinition() ResourceDefinition[entity.Vendor] {
	return ResourceDefinition[entity.Vendor]{
		Singular: "vendor",
		Plural:   "vendors",
		NewForm:  func() entity.Vendor { return entity.Vendor{} },
		ID:       func(v entity.Vendor) int { return v.ID },
		SearchText: func(v entity.Vendor) []string {
			return []string{v.Name, v.TaxID, deref(v.Email)}
		},
		Validate: func(v entity.Vendor, _ *int, _ []entity.Vendor) map[string]string {
			errs := map[string]string{}
			if blank(v.Name) {
				errs["Nombre"] = "Name is required"
			}
			if blank(v.TaxID) {
				errs["RNC"] = "Tax id is required"
			}
			if email := strings.TrimSpace(deref(v.Email)); email != "" {
				if _, err := mail.ParseAddress(email); err != nil {
					errs["Correo"] = "Email is not valid"
				}
			}
			return errs
		},
	}
}

// EntryDefinition describes the billing entry history. Entries are posted
// through AccountingService, never through the list.
func EntryDefinition() ResourceDefinition[entity.AccountingEntry] {
	return ResourceDefinition[entity.AccountingEntry]{
		Singular: "entry",
		Plural:   "entries",
		ID:       func(e entity.AccountingEntry) int { return e.ID },
		SearchText: func(e entity.AccountingEntry) []string {
			fields := []string{deref(e.Description), e.Period, e.Status}
			if e.InvoiceID != nil {
				fields = append(fields, strconv.Itoa(*e.InvoiceID))
			}
			return fields
		},
		ReadOnly: true,
	}
}

// InvoiceDefinition describes the invoice list
func InvoiceDefinition() ResourceDefinition[entity.Invoice] {
	return ResourceDefinition[entity.Invoice]{
		Singular: "invoice",
		Plural:   "invoices",
		ID:       func(i entity.Invoice) int { return i.ID },
		SearchText: func(i entity.Invoice) []string {
			return []string{i.Client, i.Seller, strconv.Itoa(i.ID)}
		},
		ReadOnly: true,
	}
}

// ValidateEntryRequest checks a billing entry before it is posted.
func ValidateEntryRequest(req *entity.EntryRequest) map[string]string {
	errs := map[string]string{}
	if !req.Amount.IsPositive() {
		errs["amount"] = "Amount must be greater than 0"
	}
	if req.Period != "" && !periodPattern.MatchString(req.Period) {
		errs["period"] = "Period must use the YYYY-MM format"
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
