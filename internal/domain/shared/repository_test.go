package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFilter(t *testing.T) {
	filter := DefaultFilter()
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.PageSize)
	assert.Equal(t, "created_at", filter.OrderBy)
	assert.Equal(t, "desc", filter.OrderDir)
	assert.NotNil(t, filter.Filters)
}

func TestNewPaginated(t *testing.T) {
	t.Run("rounds total pages up on a partial last page", func(t *testing.T) {
		page := NewPaginated([]string{"a", "b", "c"}, 7, 1, 3)
		assert.Equal(t, int64(7), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Items, 3)
	})

	t.Run("exact multiple needs no extra page", func(t *testing.T) {
		page := NewPaginated([]int{1, 2}, 6, 2, 2)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.PageSize)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		page := NewPaginated([]int(nil), 0, 1, 20)
		assert.Equal(t, 0, page.TotalPages)
		assert.Empty(t, page.Items)
	})
}
