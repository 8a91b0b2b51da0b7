package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	req := Request{}.Normalize(5)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 5, req.PerPage)

	req = Request{Page: -3, PerPage: 0}.Normalize(10)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.PerPage)

	req = Request{Page: 2, PerPage: 25}.Normalize(5)
	assert.Equal(t, 25, req.PerPage)
	assert.Equal(t, 25, req.Offset())
}

func TestNewPageLastPage(t *testing.T) {
	page := NewPage([]int{}, 0, Request{Page: 1, PerPage: 5})
	assert.Equal(t, 1, page.LastPage)
	assert.NotNil(t, page.Data)

	page = NewPage([]int{1, 2, 3, 4, 5}, 11, Request{Page: 1, PerPage: 5})
	assert.Equal(t, 3, page.LastPage)

	page = NewPage([]int{1, 2, 3, 4, 5}, 10, Request{Page: 2, PerPage: 5})
	assert.Equal(t, 2, page.LastPage)
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	page := Slice(items, Request{Page: 1, PerPage: 5})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, page.Data)
	assert.EqualValues(t, 7, page.Total)
	assert.Equal(t, 2, page.LastPage)

	page = Slice(items, Request{Page: 2, PerPage: 5})
	assert.Equal(t, []string{"f", "g"}, page.Data)

	// Past the end is an empty page, not an error.
	page = Slice(items, Request{Page: 9, PerPage: 5})
	assert.Empty(t, page.Data)
}
