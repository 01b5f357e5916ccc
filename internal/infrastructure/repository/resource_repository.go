package repository

import (
	"context"
	"net/http"
	"strconv"

	"github.com/billerone/billerone-web/internal/infrastructure/backend"
)

// ResourceOption customises a resource repository
type ResourceOption func(*resourceConfig)

type resourceConfig struct {
	listPath string
}

// WithListPath reads the collection from a path other than the item path,
// e.g. "asientos/historial" for entries stored under "asientos".
func WithListPath(path string) ResourceOption {
	return func(c *resourceConfig) {
		c.listPath = path
	}
}

// ResourceRepository implements the conventional verbs over one collection:
// GET /path, POST /path, PUT /path/id, DELETE /path/id.
type ResourceRepository[T any] struct {
	client   *backend.Client
	path     string
	listPath string
}

// NewResourceRepository creates a repository rooted at path
func NewResourceRepository[T any](client *backend.Client, path string, opts ...ResourceOption) *ResourceRepository[T] {
	cfg := resourceConfig{listPath: path}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ResourceRepository[T]{client: client, path: path, listPath: cfg.listPath}
}

func (r *ResourceRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.Do(ctx, http.MethodGet, r.listPath, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *ResourceRepository[T]) Create(ctx context.Context, item *T) error {
	return r.client.Do(ctx, http.MethodPost, r.path, item, nil)
}

func (r *ResourceRepository[T]) Update(ctx context.Context, id int, item *T) error {
	return r.client.Do(ctx, http.MethodPut, r.itemPath(id), item, nil)
}

func (r *ResourceRepository[T]) Delete(ctx context.Context, id int) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *ResourceRepository[T]) itemPath(id int) string {
	return r.path + "/" + strconv.Itoa(id)
}
