package repository

import (
	"context"
	"net/http"

	"github.com/billerone/billerone-web/internal/domain/entity"
	domainRepo "github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/internal/infrastructure/backend"
)

const billingEntryPath = "asientos/facturacion"

type accountingRepository struct {
	client *backend.Client
}

// NewAccountingRepository creates a new accounting repository
func NewAccountingRepository(client *backend.Client) domainRepo.AccountingRepository {
	return &accountingRepository{client: client}
}

func (r *accountingRepository) Submit(ctx context.Context, req *entity.EntryRequest) (*entity.EntryResponse, error) {
	var resp entity.EntryResponse
	if err := r.client.Do(ctx, http.MethodPost, billingEntryPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
