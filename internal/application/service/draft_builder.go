package service

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DraftConfig holds the invoice builder settings
type DraftConfig struct {
	Tax         TaxPolicy
	SearchLimit int
	// KeepOnFailure preserves the draft when the API rejects a submission.
	// Off by default: a failed submission discards the draft.
	KeepOnFailure bool
}

// DraftBuilder holds the line items of one invoice that has not been
// submitted yet. At most one line exists per product and every amount is
// derived from quantity and unit price.
type DraftBuilder struct {
	mu       sync.Mutex
	cfg      DraftConfig
	invoices repository.InvoiceRepository
	logger   *zap.Logger
	newKey   func() string

	clientID   *int
	sellerID   *int
	comment    string
	search     string
	items      []entity.LineItem
	submitting bool
}

// NewDraftBuilder creates an empty draft
func NewDraftBuilder(cfg DraftConfig, invoices repository.InvoiceRepository, logger *zap.Logger) *DraftBuilder {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 10
	}
	return &DraftBuilder{
		cfg:      cfg,
		invoices: invoices,
		logger:   logger,
		newKey:   uuid.NewString,
	}
}

// AddProduct adds one unit of article. An existing line for the same product
// is incremented instead of duplicated. Clears the product search text.
func (b *DraftBuilder) AddProduct(article entity.Article) entity.LineItem {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.search = ""

	for i := range b.items {
		if b.items[i].ProductID == article.ID {
			b.items[i].Quantity++
			b.items[i].Amount = lineAmount(b.items[i].Quantity, b.items[i].UnitPrice)
			return b.items[i]
		}
	}

	price := article.Price()
	item := entity.LineItem{
		Key:         b.newKey(),
		ProductID:   article.ID,
		Description: article.Description,
		Quantity:    1,
		UnitPrice:   price,
		Amount:      lineAmount(1, price),
	}
	b.items = append(b.items, item)
	return item
}

// SetQuantity replaces the quantity of the line with key. A quantity of zero
// or less removes the line. Reports whether the key was found.
func (b *DraftBuilder) SetQuantity(key string, quantity int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexLocked(key)
	if idx < 0 {
		return false
	}
	if quantity <= 0 {
		b.items = append(b.items[:idx], b.items[idx+1:]...)
		return true
	}
	b.items[idx].Quantity = quantity
	b.items[idx].Amount = lineAmount(quantity, b.items[idx].UnitPrice)
	return true
}

// RemoveItem drops the line with key, if any.
func (b *DraftBuilder) RemoveItem(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexLocked(key)
	if idx < 0 {
		return false
	}
	b.items = append(b.items[:idx], b.items[idx+1:]...)
	return true
}

// SetHeader selects the client and seller and sets the comment. Nil ids
// clear the selection.
func (b *DraftBuilder) SetHeader(clientID, sellerID *int, comment string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clientID = copyInt(clientID)
	b.sellerID = copyInt(sellerID)
	b.comment = comment
}

// SearchProducts records text as the current search and returns the first
// matching active articles by description or id. Blank text matches nothing.
func (b *DraftBuilder) SearchProducts(text string, articles []entity.Article) []entity.Article {
	b.mu.Lock()
	b.search = text
	limit := b.cfg.SearchLimit
	b.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return []entity.Article{}
	}

	results := make([]entity.Article, 0, limit)
	for _, a := range articles {
		if !a.IsActive() {
			continue
		}
		if strings.Contains(strings.ToLower(a.Description), q) || strings.Contains(strconv.Itoa(a.ID), q) {
			results = append(results, a)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// ComputeTotals returns subtotal, tax and total of the current lines.
func (b *DraftBuilder) ComputeTotals() entity.Totals {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.totalsLocked()
}

// Snapshot returns a copy of the draft for rendering.
func (b *DraftBuilder) Snapshot() entity.InvoiceDraft {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]entity.LineItem, len(b.items))
	copy(items, b.items)

	return entity.InvoiceDraft{
		ClientID:   copyInt(b.clientID),
		SellerID:   copyInt(b.sellerID),
		Comment:    b.comment,
		Search:     b.search,
		Items:      items,
		Totals:     b.totalsLocked(),
		Submitting: b.submitting,
	}
}

// Reset clears client, seller, comment, search and lines.
func (b *DraftBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetLocked()
}

// Submit sends the draft as an invoice creation request. A client, a seller
// and at least one line are required; otherwise a validation error is
// returned and nothing is sent. Only one submission may be in flight.
//
// On success the draft is cleared. On rejection the draft is cleared too,
// unless KeepOnFailure is set.
func (b *DraftBuilder) Submit(ctx context.Context) error {
	b.mu.Lock()
	if b.submitting {
		b.mu.Unlock()
		return apperror.ErrSubmitInProgress
	}

	fields := make(map[string]string)
	if b.clientID == nil {
		fields["clientId"] = "Select a client"
	}
	if b.sellerID == nil {
		fields["sellerId"] = "Select a seller"
	}
	if len(b.items) == 0 {
		fields["items"] = "Add at least one article"
	}
	if len(fields) > 0 {
		b.mu.Unlock()
		return apperror.NewValidationErrorFromMap(fields)
	}

	req := b.requestLocked()
	b.submitting = true
	b.mu.Unlock()

	err := b.invoices.Create(ctx, req)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false

	if err != nil {
		b.logger.Warn("invoice submission failed",
			zap.Int("client_id", req.ClientID),
			zap.Int("lines", len(req.Lines)),
			zap.Bool("draft_kept", b.cfg.KeepOnFailure),
			zap.Error(err),
		)
		if !b.cfg.KeepOnFailure {
			b.resetLocked()
		}
		return err
	}

	b.logger.Info("invoice submitted",
		zap.Int("client_id", req.ClientID),
		zap.Int("seller_id", req.SellerID),
		zap.Int("lines", len(req.Lines)),
	)
	b.resetLocked()
	return nil
}

func (b *DraftBuilder) requestLocked() *entity.CreateInvoiceRequest {
	req := &entity.CreateInvoiceRequest{
		ClientID: *b.clientID,
		SellerID: *b.sellerID,
		Lines:    make([]entity.InvoiceLineRequest, 0, len(b.items)),
	}
	if b.comment != "" {
		comment := b.comment
		req.Comment = &comment
	}
	for _, it := range b.items {
		req.Lines = append(req.Lines, entity.InvoiceLineRequest{
			ArticleID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return req
}

func (b *DraftBuilder) totalsLocked() entity.Totals {
	subtotal := decimal.Zero
	for _, it := range b.items {
		subtotal = subtotal.Add(it.Amount)
	}
	return b.cfg.Tax.Totals(subtotal)
}

func (b *DraftBuilder) resetLocked() {
	b.clientID = nil
	b.sellerID = nil
	b.comment = ""
	b.search = ""
	b.items = nil
}

func (b *DraftBuilder) indexLocked(key string) int {
	for i := range b.items {
		if b.items[i].Key == key {
			return i
		}
	}
	return -1
}

func lineAmount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
