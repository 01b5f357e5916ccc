package repository

import (
	"context"
)

// ResourceRepository defines CRUD over one flat collection of the billing API
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id int, item *T) error
	Delete(ctx context.Context, id int) error
}
