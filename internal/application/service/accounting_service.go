package service

import (
	"context"
	"fmt"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/apperror"
	"go.uber.org/zap"
)

// AccountingService posts billing entries to the accounting module
type AccountingService struct {
	accountingRepo repository.AccountingRepository
	logger         *zap.Logger
}

// NewAccountingService creates a new accounting service
func NewAccountingService(accountingRepo repository.AccountingRepository, logger *zap.Logger) *AccountingService {
	return &AccountingService{
		accountingRepo: accountingRepo,
		logger:         logger,
	}
}

// Suggest derives an entry for an invoice of the workspace's invoice list:
// its total, the YYYY-MM period of its date and a standard description.
func (s *AccountingService) Suggest(ctx context.Context, ws *Workspace, invoiceID int) (*entity.EntryRequest, error) {
	if err := ws.Invoices.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	invoice, ok := ws.Invoices.Find(invoiceID)
	if !ok {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	issued, ok := invoice.IssuedAt()
	if !ok {
		return nil, apperror.NewBadRequestError("Invoice date is not valid")
	}
	period := issued.Format("2006-01")
	id := invoice.ID

	return &entity.EntryRequest{
		Amount:      invoice.Total,
		Period:      period,
		Description: fmt.Sprintf("Billing entry for period %s - Invoice #%d", period, id),
		InvoiceID:   &id,
	}, nil
}

// Submit validates and posts an entry. A response flagged as not ok is a
// failure carrying the module's message. The history is reloaded on success.
func (s *AccountingService) Submit(ctx context.Context, ws *Workspace, req *entity.EntryRequest) (*entity.EntryResponse, error) {
	if errs := ValidateEntryRequest(req); len(errs) > 0 {
		return nil, apperror.NewValidationErrorFromMap(errs)
	}

	resp, err := s.accountingRepo.Submit(ctx, req)
	if err != nil {
		s.logger.Warn("entry submission failed", zap.Error(err))
		ws.Notices.Error("Could not post entry: " + err.Error())
		return nil, err
	}
	if !resp.IsOk {
		msg := resp.Message
		if msg == "" {
			msg = "Accounting module rejected the entry"
		}
		s.logger.Warn("entry rejected", zap.String("message", msg))
		ws.Notices.Error(msg)
		return nil, apperror.NewBadRequestError(msg)
	}

	ws.Notices.Info("Entry posted")
	_ = ws.Entries.Load(ctx)
	return resp, nil
}
