package repository

import (
	"context"
	"net/http"
	"strconv"

	"github.com/billerone/billerone-web/internal/domain/entity"
	domainRepo "github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/internal/infrastructure/backend"
)

const invoicesPath = "facturas"

type invoiceRepository struct {
	client *backend.Client
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(client *backend.Client) domainRepo.InvoiceRepository {
	return &invoiceRepository{client: client}
}

func (r *invoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	invoices := []entity.Invoice{}
	if err := r.client.Do(ctx, http.MethodGet, invoicesPath, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int) (*entity.InvoiceDetail, error) {
	var detail entity.InvoiceDetail
	if err := r.client.Do(ctx, http.MethodGet, invoicesPath+"/"+strconv.Itoa(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *invoiceRepository) Create(ctx context.Context, req *entity.CreateInvoiceRequest) error {
	return r.client.Do(ctx, http.MethodPost, invoicesPath, req, nil)
}
