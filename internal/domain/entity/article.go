package entity

import (
	"github.com/billerone/billerone-web/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Article represents a sellable product
type Article struct {
	ID          int              `json:"ArticuloID,omitempty"`
	Description string           `json:"Descripcion"`
	UnitPrice   *decimal.Decimal `json:"PrecioUnitario,omitempty"`
	Status      *enum.Status     `json:"Estado,omitempty"`
}

// NewArticleForm returns the defaults of an empty article form.
func NewArticleForm() Article {
	return Article{Status: enum.StatusPtr(enum.StatusActive)}
}

// IsActive reports whether the article can be sold. A missing flag counts as
// inactive.
func (a Article) IsActive() bool {
	return a.Status != nil && a.Status.IsActive()
}

// Price returns the unit price, zero when unset.
func (a Article) Price() decimal.Decimal {
	if a.UnitPrice == nil {
		return decimal.Zero
	}
	return *a.UnitPrice
}

// ActiveArticles filters out inactive articles, keeping order.
func ActiveArticles(articles []Article) []Article {
	active := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.IsActive() {
			active = append(active, a)
		}
	}
	return active
}
