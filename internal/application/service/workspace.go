package service

import (
	"context"
	"sync"
	"time"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repositories groups the billing API collections a workspace works on
type Repositories struct {
	Clients    repository.ResourceRepository[entity.Client]
	Sellers    repository.ResourceRepository[entity.Seller]
	Articles   repository.ResourceRepository[entity.Article]
	Vendors    repository.ResourceRepository[entity.Vendor]
	Entries    repository.ResourceRepository[entity.AccountingEntry]
	Invoices   repository.InvoiceRepository
	Accounting repository.AccountingRepository
	Auth       repository.AuthRepository
}

// Workspace is the screen state of one signed-in session: the cached lists,
// their forms, the invoice draft and the transient notices.
type Workspace struct {
	SessionID uuid.UUID
	Username  string

	Notices  *MessageBoard
	Clients  *ResourceList[entity.Client]
	Sellers  *ResourceList[entity.Seller]
	Articles *ResourceList[entity.Article]
	Vendors  *ResourceList[entity.Vendor]
	Entries  *ResourceList[entity.AccountingEntry]
	Invoices *ResourceList[entity.Invoice]
	Draft    *DraftBuilder
}

// WorkspaceFactory builds workspaces that share the same repositories
type WorkspaceFactory struct {
	repos     Repositories
	draftCfg  DraftConfig
	noticeTTL time.Duration
	logger    *zap.Logger
}

// NewWorkspaceFactory creates a new workspace factory
func NewWorkspaceFactory(repos Repositories, draftCfg DraftConfig, noticeTTL time.Duration, logger *zap.Logger) *WorkspaceFactory {
	return &WorkspaceFactory{
		repos:     repos,
		draftCfg:  draftCfg,
		noticeTTL: noticeTTL,
		logger:    logger,
	}
}

// New creates an empty workspace for a session.
func (f *WorkspaceFactory) New(sessionID uuid.UUID, username string) *Workspace {
	logger := f.logger.With(zap.String("session_id", sessionID.String()))
	board := NewMessageBoard(f.noticeTTL)

	return &Workspace{
		SessionID: sessionID,
		Username:  username,
		Notices:   board,
		Clients:   NewResourceList(ClientDefinition(), f.repos.Clients, board, logger),
		Sellers:   NewResourceList(SellerDefinition(), f.repos.Sellers, board, logger),
		Articles:  NewResourceList(ArticleDefinition(), f.repos.Articles, board, logger),
		Vendors:   NewResourceList(VendorDefinition(), f.repos.Vendors, board, logger),
		Entries:   NewResourceList(EntryDefinition(), f.repos.Entries, board, logger),
		Invoices:  NewResourceList(InvoiceDefinition(), invoiceCollection{f.repos.Invoices}, board, logger),
		Draft:     NewDraftBuilder(f.draftCfg, f.repos.Invoices, logger),
	}
}

// invoiceCollection exposes the invoice list as a read-only collection.
type invoiceCollection struct {
	repo repository.InvoiceRepository
}

func (c invoiceCollection) List(ctx context.Context) ([]entity.Invoice, error) {
	return c.repo.List(ctx)
}

func (c invoiceCollection) Create(context.Context, *entity.Invoice) error {
	return apperror.NewBadRequestError("invoices are created from a draft")
}

func (c invoiceCollection) Update(context.Context, int, *entity.Invoice) error {
	return apperror.NewBadRequestError("invoices are read-only")
}

func (c invoiceCollection) Delete(context.Context, int) error {
	return apperror.NewBadRequestError("invoices are read-only")
}

// WorkspaceStore keeps one workspace per session and evicts the ones left
// idle for longer than the configured TTL.
type WorkspaceStore struct {
	factory     *WorkspaceFactory
	workspaces  map[uuid.UUID]*workspaceEntry
	mu          sync.RWMutex
	idleTTL     time.Duration
	cleanupTick time.Duration
	now         func() time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

type workspaceEntry struct {
	workspace *Workspace
	lastSeen  time.Time
}

// NewWorkspaceStore creates a store and starts its background sweep
func NewWorkspaceStore(factory *WorkspaceFactory, idleTTL, sweepInterval time.Duration) *WorkspaceStore {
	if idleTTL <= 0 {
		idleTTL = 2 * time.Hour
	}
	if sweepInterval <= 0 {
		sweepInterval = 5 * time.Minute
	}
	s := &WorkspaceStore{
		factory:     factory,
		workspaces:  make(map[uuid.UUID]*workspaceEntry),
		idleTTL:     idleTTL,
		cleanupTick: sweepInterval,
		now:         time.Now,
		stop:        make(chan struct{}),
	}

	go s.cleanupLoop()

	return s
}

// Get returns the workspace of sessionID, creating it on first use.
func (s *WorkspaceStore) Get(sessionID uuid.UUID, username string) *Workspace {
	s.mu.RLock()
	entry, exists := s.workspaces[sessionID]
	s.mu.RUnlock()

	if exists {
		s.mu.Lock()
		entry.lastSeen = s.now()
		s.mu.Unlock()
		return entry.workspace
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double check after acquiring write lock
	if entry, exists := s.workspaces[sessionID]; exists {
		entry.lastSeen = s.now()
		return entry.workspace
	}

	ws := s.factory.New(sessionID, username)
	s.workspaces[sessionID] = &workspaceEntry{workspace: ws, lastSeen: s.now()}
	return ws
}

// Drop forgets the workspace of sessionID.
func (s *WorkspaceStore) Drop(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.workspaces, sessionID)
}

// Len returns the number of live workspaces.
func (s *WorkspaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}

// Close stops the background sweep.
func (s *WorkspaceStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *WorkspaceStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}

// cleanup removes workspaces that haven't been used recently
func (s *WorkspaceStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTTL)
	for id, entry := range s.workspaces {
		if entry.lastSeen.Before(cutoff) {
			delete(s.workspaces, id)
		}
	}
}
