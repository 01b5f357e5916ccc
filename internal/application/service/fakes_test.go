package service

import (
	"context"
	"sync"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakeCollection[T any] struct {
	mu      sync.Mutex
	items   []T
	listErr error
	saveErr error
	listFn  func(ctx context.Context) ([]T, error)
	lists   int
	creates []T
	updates map[int]T
	deletes []int
}

func (f *fakeCollection[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	f.lists++
	fn := f.listFn
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeCollection[T]) Create(_ context.Context, item *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.creates = append(f.creates, *item)
	return nil
}

func (f *fakeCollection[T]) Update(_ context.Context, id int, item *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.updates == nil {
		f.updates = make(map[int]T)
	}
	f.updates[id] = *item
	return nil
}

func (f *fakeCollection[T]) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeCollection[T]) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

type fakeInvoices struct {
	mu        sync.Mutex
	invoices  []entity.Invoice
	details   map[int]*entity.InvoiceDetail
	createErr error
	created   []entity.CreateInvoiceRequest
	// block, when set, holds Create until it is closed
	block chan struct{}
}

func (f *fakeInvoices) List(context.Context) ([]entity.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Invoice, len(f.invoices))
	copy(out, f.invoices)
	return out, nil
}

func (f *fakeInvoices) GetByID(_ context.Context, id int) (*entity.InvoiceDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.details[id]
	if !ok {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return d, nil
}

func (f *fakeInvoices) Create(_ context.Context, req *entity.CreateInvoiceRequest) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, *req)
	return f.createErr
}

func (f *fakeInvoices) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type fakeAccounting struct {
	resp     *entity.EntryResponse
	err      error
	requests []entity.EntryRequest
}

func (f *fakeAccounting) Submit(_ context.Context, req *entity.EntryRequest) (*entity.EntryResponse, error) {
	f.requests = append(f.requests, *req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeAuth struct {
	err   error
	calls int
}

func (f *fakeAuth) Login(context.Context, string, string) error {
	f.calls++
	return f.err
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (n *recordingNotifier) Post(level NoticeLevel, text string) Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	notice := Notice{Level: level, Text: text}
	n.notices = append(n.notices, notice)
	return notice
}

func (n *recordingNotifier) levels() []NoticeLevel {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]NoticeLevel, 0, len(n.notices))
	for _, notice := range n.notices {
		out = append(out, notice.Level)
	}
	return out
}

type testRepos struct {
	clients    *fakeCollection[entity.Client]
	sellers    *fakeCollection[entity.Seller]
	articles   *fakeCollection[entity.Article]
	vendors    *fakeCollection[entity.Vendor]
	entries    *fakeCollection[entity.AccountingEntry]
	invoices   *fakeInvoices
	accounting *fakeAccounting
	auth       *fakeAuth
}

func newTestRepos() *testRepos {
	return &testRepos{
		clients:    &fakeCollection[entity.Client]{},
		sellers:    &fakeCollection[entity.Seller]{},
		articles:   &fakeCollection[entity.Article]{},
		vendors:    &fakeCollection[entity.Vendor]{},
		entries:    &fakeCollection[entity.AccountingEntry]{},
		invoices:   &fakeInvoices{details: map[int]*entity.InvoiceDetail{}},
		accounting: &fakeAccounting{resp: &entity.EntryResponse{IsOk: true}},
		auth:       &fakeAuth{},
	}
}

func (r *testRepos) repositories() Repositories {
	return Repositories{
		Clients:    r.clients,
		Sellers:    r.sellers,
		Articles:   r.articles,
		Vendors:    r.vendors,
		Entries:    r.entries,
		Invoices:   r.invoices,
		Accounting: r.accounting,
		Auth:       r.auth,
	}
}

func testDraftConfig() DraftConfig {
	return DraftConfig{
		Tax:         TaxPolicy{Rate: decimal.RequireFromString("0.18"), Places: 2},
		SearchLimit: 10,
	}
}

func newTestFactory(r *testRepos) *WorkspaceFactory {
	return NewWorkspaceFactory(r.repositories(), testDraftConfig(), 0, zap.NewNop())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
