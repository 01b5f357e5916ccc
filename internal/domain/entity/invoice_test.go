package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_IssuedAt(t *testing.T) {
	tests := []struct {
		in    string
		month time.Month
		ok    bool
	}{
		{"2025-03-14T10:20:00Z", time.March, true},
		{"2025-03-14T10:20:00", time.March, true},
		{"2025-11-02 08:00:00", time.November, true},
		{"2025-07-01", time.July, true},
		{"14/03/2025", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Invoice{Date: tt.in}.IssuedAt()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.month, got.Month())
			}
		})
	}
}

func TestCreateInvoiceRequest_JSON(t *testing.T) {
	req := CreateInvoiceRequest{
		ClientID: 3,
		SellerID: 7,
		Lines: []InvoiceLineRequest{
			{ArticleID: 11, Quantity: 2, UnitPrice: decimal.RequireFromString("100.50")},
		},
	}

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ClienteID": 3,
		"VendedorID": 7,
		"Comentario": null,
		"Detalle": [{"ArticuloID": 11, "Cantidad": 2, "PrecioUnitario": 100.5}]
	}`, string(out))
}

func TestInvoiceDetail_Total(t *testing.T) {
	d := InvoiceDetail{Lines: []InvoiceLine{
		{Amount: decimal.NewFromInt(200)},
		{Amount: decimal.RequireFromString("49.99")},
	}}
	assert.True(t, d.Total().Equal(decimal.RequireFromString("249.99")))
}

func TestArticle_UnmarshalMixedStatus(t *testing.T) {
	var articles []Article
	require.NoError(t, json.Unmarshal([]byte(`[
		{"ArticuloID": 1, "Descripcion": "Mouse", "PrecioUnitario": 85, "Estado": true},
		{"ArticuloID": 2, "Descripcion": "Cable", "PrecioUnitario": 10, "Estado": 0},
		{"ArticuloID": 3, "Descripcion": "Hub", "PrecioUnitario": 40}
	]`), &articles))

	active := ActiveArticles(articles)
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)
	assert.True(t, active[0].Price().Equal(decimal.NewFromInt(85)))
}
