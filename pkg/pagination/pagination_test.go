package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsRanges(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 500}
	p.Validate()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 4, PerPage: 15}
	assert.Equal(t, 45, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 10, 35)
	assert.Equal(t, 4, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}
