package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsValues(t *testing.T) {
	p := ListParams{Page: -3, PerPage: 1000, OrderBy: "sideways"}
	p.Validate()

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)
}

func TestValidateKeepsValidValues(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 25, OrderBy: "asc", SortBy: "last_name"}
	p.Validate()

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, "asc", p.OrderBy)
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 4, PerPage: 10}
	assert.Equal(t, 30, p.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestNewPaginatedResult(t *testing.T) {
	p := DefaultListParams("created_at")
	res := NewPaginatedResult([]string{"a", "b"}, p, 12)

	assert.Equal(t, int64(12), res.Meta.TotalItems)
	assert.Equal(t, 2, res.Meta.TotalPages)
	assert.Equal(t, DefaultPage, res.Meta.CurrentPage)
}
