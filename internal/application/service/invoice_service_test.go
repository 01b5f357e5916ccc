package service

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestInvoiceService_ExportXLSX(t *testing.T) {
	repos := newTestRepos()
	repos.invoices.invoices = []entity.Invoice{
		{ID: 1, Client: "Ozama", Seller: "Ana", Date: "2024-03-15", Comment: strPtr("Contado"), Total: dec("118")},
		{ID: 2, Client: "Luz", Seller: "Luis", Date: "2024-04-01", Total: dec("59")},
	}
	ws := newTestFactory(repos).New(uuid.New(), "ana")
	svc := NewInvoiceService(repos.invoices, testDraftConfig().Tax, zap.NewNop())

	data, err := svc.ExportXLSX(context.Background(), ws)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(InvoiceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Client", "Seller", "Date", "Comment", "Total"}, rows[0])
	assert.Equal(t, []string{"1", "Ozama", "Ana", "2024-03-15", "Contado", "118"}, rows[1])
	assert.Equal(t, "Luz", rows[2][1])
}

func TestInvoiceService_ExportEmpty(t *testing.T) {
	repos := newTestRepos()
	ws := newTestFactory(repos).New(uuid.New(), "ana")
	svc := NewInvoiceService(repos.invoices, testDraftConfig().Tax, zap.NewNop())

	_, err := svc.ExportXLSX(context.Background(), ws)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestInvoiceService_RenderPDF(t *testing.T) {
	repos := newTestRepos()
	repos.invoices.details[7] = &entity.InvoiceDetail{
		ID:     7,
		Client: "Ozama",
		Seller: "Ana",
		Date:   "2024-03-15",
		Lines: []entity.InvoiceLine{
			{ArticleID: 1, Description: "Arena", Quantity: 2, UnitPrice: dec("20"), Amount: dec("40")},
		},
	}
	svc := NewInvoiceService(repos.invoices, testDraftConfig().Tax, zap.NewNop())

	data, err := svc.RenderPDF(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	_, err = svc.RenderPDF(context.Background(), 8)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestInvoiceService_TotalRowsMatchReceipt(t *testing.T) {
	repos := receiptRepos()
	svc := NewInvoiceService(repos.invoices, testDraftConfig().Tax, zap.NewNop())
	detail := repos.invoices.details[7]

	rows := svc.totalRows(detail)

	assert.Equal(t, []totalRow{
		{label: "Subtotal", amount: "100.00"},
		{label: "ITBIS", amount: "18.00"},
		{label: "Total", amount: "118.00"},
	}, rows)

	receipt, err := NewReceiptService(nil, repos.invoices, receiptConfig(), zap.NewNop()).BuildReceipt(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, receipt.Total.StringFixed(2), rows[2].amount)
}

func TestInvoiceService_SubmitDraft(t *testing.T) {
	repos := newTestRepos()
	ws := newTestFactory(repos).New(uuid.New(), "ana")
	svc := NewInvoiceService(repos.invoices, testDraftConfig().Tax, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, ws.Invoices.Load(ctx))

	err := svc.SubmitDraft(ctx, ws)
	require.Error(t, err)
	assert.Zero(t, repos.invoices.createdCount())

	ws.Draft.SetHeader(intPtr(1), intPtr(1), "")
	ws.Draft.AddProduct(article(1, "Arena", "20"))
	require.NoError(t, svc.SubmitDraft(ctx, ws))

	assert.Equal(t, 1, repos.invoices.createdCount())
	active := ws.Notices.Active()
	require.Len(t, active, 2)
	assert.Equal(t, NoticeError, active[0].Level)
	assert.Equal(t, NoticeInfo, active[1].Level)
}
