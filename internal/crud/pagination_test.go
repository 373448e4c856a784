package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestPageNavHiddenForSinglePage(t *testing.T) {
	assert.False(t, NewPageNav(1, 0, 0, 20).Visible())
	assert.False(t, NewPageNav(1, 1, 20, 20).Visible())
	assert.True(t, NewPageNav(1, 2, 21, 20).Visible())
}

func TestPageNavClampsNavigation(t *testing.T) {
	nav := NewPageNav(1, 3, 50, 20)

	assert.False(t, nav.HasPrev())
	assert.True(t, nav.HasNext())
	// Prev from the first page must not leave the valid range
	assert.Equal(t, 1, nav.Prev())
	assert.Equal(t, 2, nav.Next())

	last := NewPageNav(3, 3, 50, 20)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
	assert.Equal(t, 3, last.Next())

	// Caller-supplied garbage still clamps
	assert.Equal(t, 1, nav.Clamp(-5))
	assert.Equal(t, 3, nav.Clamp(99))
}

func TestPageNavClampsCurrentOnConstruction(t *testing.T) {
	nav := NewPageNav(10, 3, 50, 20)
	assert.Equal(t, 3, nav.Current)

	nav = NewPageNav(0, 3, 50, 20)
	assert.Equal(t, 1, nav.Current)
}

func TestPageNavRangeSummary(t *testing.T) {
	nav := NewPageNav(1, 3, 45, 20)
	assert.Equal(t, 1, nav.Start())
	assert.Equal(t, 20, nav.End())

	nav = NewPageNav(3, 3, 45, 20)
	assert.Equal(t, 41, nav.Start())
	assert.Equal(t, 45, nav.End())

	empty := NewPageNav(1, 0, 0, 20)
	assert.Equal(t, 0, empty.Start())
	assert.Equal(t, 0, empty.End())
}
