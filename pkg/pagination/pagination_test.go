package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("first page", func(t *testing.T) {
		res := Paginate(items, &PaginationParams{Page: 1, PerPage: 3})
		assert.Equal(t, []int{1, 2, 3}, res.Items)
		assert.Equal(t, 3, res.Pagination.TotalPages)
		assert.True(t, res.Pagination.HasNext)
		assert.False(t, res.Pagination.HasPrev)
	})

	t.Run("last partial page", func(t *testing.T) {
		res := Paginate(items, &PaginationParams{Page: 3, PerPage: 3})
		assert.Equal(t, []int{7}, res.Items)
		assert.False(t, res.Pagination.HasNext)
		assert.True(t, res.Pagination.HasPrev)
	})

	t.Run("past the end", func(t *testing.T) {
		res := Paginate(items, &PaginationParams{Page: 9, PerPage: 3})
		assert.Empty(t, res.Items)
		assert.Equal(t, int64(7), res.Pagination.Total)
	})

	t.Run("invalid params fall back to defaults", func(t *testing.T) {
		res := Paginate(items, &PaginationParams{})
		assert.Len(t, res.Items, 7)
		assert.Equal(t, 1, res.Pagination.CurrentPage)
		assert.Equal(t, 15, res.Pagination.PerPage)
	})
}
