package repository

import (
	"context"

	"github.com/billerone/billerone-web/internal/domain/entity"
)

// AccountingRepository posts billing entries to the accounting module. The
// entry history is served through a ResourceRepository.
type AccountingRepository interface {
	// Submit posts a billing entry. A response with IsOk false is returned
	// as-is; only transport and status failures are errors.
	Submit(ctx context.Context, req *entity.EntryRequest) (*entity.EntryResponse, error)
}
