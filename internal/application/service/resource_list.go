package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/billerone/billerone-web/internal/domain/repository"
	"github.com/billerone/billerone-web/pkg/apperror"
	"go.uber.org/zap"
)

// ResourceDefinition describes one flat collection managed by a ResourceList
type ResourceDefinition[T any] struct {
	Singular string
	Plural   string
	// NewForm returns the values of an empty form.
	NewForm func() T
	ID      func(T) int
	// SearchText returns the fields matched by Filter.
	SearchText func(T) []string
	// Validate returns field -> message; an empty result means valid.
	// loaded is the current cache, editingID the record being edited.
	Validate func(values T, editingID *int, loaded []T) map[string]string
	// ReadOnly lists reject Save and Remove.
	ReadOnly bool
	// ChecksCache marks rules that compare against loaded records. Save
	// loads the collection before the final check when it is set.
	ChecksCache bool
}

// Title returns the singular name capitalized.
func (d ResourceDefinition[T]) Title() string {
	return capitalize(d.Singular)
}

// PluralTitle returns the plural name capitalized.
func (d ResourceDefinition[T]) PluralTitle() string {
	return capitalize(d.Plural)
}

// FormState is the create/edit form of a list
type FormState[T any] struct {
	Values    T                 `json:"values"`
	EditingID *int              `json:"editingId"`
	Errors    map[string]string `json:"errors"`
	Open      bool              `json:"open"`
}

// ResourceList caches one collection of the billing API and drives its
// create/edit form. The cache is only replaced by a successful load.
type ResourceList[T any] struct {
	mu         sync.Mutex
	def        ResourceDefinition[T]
	repo       repository.ResourceRepository[T]
	notices    Notifier
	logger     *zap.Logger
	items      []T
	loaded     bool
	generation uint64
	form       FormState[T]
}

// NewResourceList creates an unloaded list
func NewResourceList[T any](def ResourceDefinition[T], repo repository.ResourceRepository[T], notices Notifier, logger *zap.Logger) *ResourceList[T] {
	l := &ResourceList[T]{
		def:     def,
		repo:    repo,
		notices: notices,
		logger:  logger.With(zap.String("resource", def.Plural)),
	}
	l.form = l.emptyForm()
	return l
}

// Definition returns the list's resource definition.
func (l *ResourceList[T]) Definition() ResourceDefinition[T] {
	return l.def
}

// Load fetches the whole collection and replaces the cache. On failure the
// previous cache is kept. When loads overlap, only the most recently started
// one may replace a loaded cache; older responses are dropped. An older
// response still fills a cache that has never loaded.
func (l *ResourceList[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.mu.Unlock()

	items, err := l.repo.List(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		if l.loaded {
			l.logger.Debug("discarding stale load", zap.Uint64("generation", gen))
			return nil
		}
		if err != nil {
			return err
		}
		l.items = items
		l.loaded = true
		return nil
	}
	if err != nil {
		l.logger.Warn("load failed", zap.Error(err))
		l.notices.Post(NoticeError, fmt.Sprintf("Could not load %s: %s", l.def.Plural, err.Error()))
		return err
	}

	l.items = items
	l.loaded = true
	return nil
}

// EnsureLoaded loads the collection unless a load already succeeded.
func (l *ResourceList[T]) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	loaded := l.loaded
	l.mu.Unlock()

	if loaded {
		return nil
	}
	return l.Load(ctx)
}

// Loaded reports whether any load has succeeded.
func (l *ResourceList[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Items returns a copy of the cache.
func (l *ResourceList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.itemsLocked()
}

// Filter returns the cached records whose search fields contain query,
// ignoring case. A blank query returns everything.
func (l *ResourceList[T]) Filter(query string) []T {
	items := l.Items()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || l.def.SearchText == nil {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, field := range l.def.SearchText(it) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Find looks up a cached record by id.
func (l *ResourceList[T]) Find(id int) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findLocked(id)
}

// Validate checks values against the current cache.
func (l *ResourceList[T]) Validate(values T, editingID *int) map[string]string {
	if l.def.Validate == nil {
		return map[string]string{}
	}
	errs := l.def.Validate(values, editingID, l.Items())
	if errs == nil {
		errs = map[string]string{}
	}
	return errs
}

// OpenForm opens the form with the defaults, or with the cached record id.
func (l *ResourceList[T]) OpenForm(id *int) (FormState[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == nil {
		l.form = l.emptyForm()
		l.form.Open = true
		return l.form, nil
	}

	item, ok := l.findLocked(*id)
	if !ok {
		return FormState[T]{}, apperror.NewNotFoundError(l.def.Title())
	}
	editing := *id
	l.form = FormState[T]{
		Values:    item,
		EditingID: &editing,
		Errors:    map[string]string{},
		Open:      true,
	}
	return l.form, nil
}

// Form returns the current form state.
func (l *ResourceList[T]) Form() FormState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.form
}

// CloseForm discards the form input.
func (l *ResourceList[T]) CloseForm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.form = l.emptyForm()
}

// Save validates values and creates (editingID nil) or updates a record.
// Invalid input never reaches the API. On success the form is reset and the
// collection reloaded; on failure the form stays open with the input intact.
func (l *ResourceList[T]) Save(ctx context.Context, values T, editingID *int) error {
	if l.def.ReadOnly {
		return apperror.NewBadRequestError(l.def.Plural + " are read-only")
	}

	errs := l.Validate(values, editingID)
	if len(errs) == 0 && l.def.ChecksCache && !l.Loaded() {
		if err := l.Load(ctx); err != nil {
			l.setForm(values, editingID, errs)
			return err
		}
		errs = l.Validate(values, editingID)
	}

	l.setForm(values, editingID, errs)
	if len(errs) > 0 {
		return apperror.NewValidationErrorFromMap(errs)
	}

	var err error
	verb := "created"
	if editingID != nil {
		verb = "updated"
		err = l.repo.Update(ctx, *editingID, &values)
	} else {
		err = l.repo.Create(ctx, &values)
	}

	if err != nil {
		l.logger.Warn("save failed", zap.Bool("update", editingID != nil), zap.Error(err))
		l.notices.Post(NoticeError, fmt.Sprintf("Could not save %s: %s", l.def.Singular, err.Error()))
		return err
	}

	l.notices.Post(NoticeInfo, fmt.Sprintf("%s %s", l.def.Title(), verb))

	l.mu.Lock()
	l.form = l.emptyForm()
	l.mu.Unlock()

	_ = l.Load(ctx)
	return nil
}

// Remove deletes the cached record id and reloads. The id is resolved
// against the last successful load.
func (l *ResourceList[T]) Remove(ctx context.Context, id int) error {
	if l.def.ReadOnly {
		return apperror.NewBadRequestError(l.def.Plural + " are read-only")
	}

	if _, ok := l.Find(id); !ok {
		return apperror.NewNotFoundError(l.def.Title())
	}

	if err := l.repo.Delete(ctx, id); err != nil {
		l.logger.Warn("delete failed", zap.Int("id", id), zap.Error(err))
		l.notices.Post(NoticeError, fmt.Sprintf("Could not delete %s: %s", l.def.Singular, err.Error()))
		return err
	}

	l.notices.Post(NoticeInfo, fmt.Sprintf("%s deleted", l.def.Title()))
	_ = l.Load(ctx)
	return nil
}

func (l *ResourceList[T]) setForm(values T, editingID *int, errs map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.form = FormState[T]{Values: values, EditingID: copyInt(editingID), Errors: errs, Open: true}
}

func (l *ResourceList[T]) emptyForm() FormState[T] {
	var values T
	if l.def.NewForm != nil {
		values = l.def.NewForm()
	}
	return FormState[T]{Values: values, Errors: map[string]string{}}
}

func (l *ResourceList[T]) itemsLocked() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ResourceList[T]) findLocked(id int) (T, bool) {
	for _, it := range l.items {
		if l.def.ID(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
