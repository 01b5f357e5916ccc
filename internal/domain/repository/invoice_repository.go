package repository

import (
	"context"

	"github.com/billerone/billerone-web/internal/domain/entity"
)

// InvoiceRepository defines the interface for invoice operations
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id int) (*entity.InvoiceDetail, error)
	Create(ctx context.Context, req *entity.CreateInvoiceRequest) error
}
