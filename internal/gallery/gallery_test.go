package gallery

import (
	"testing"
	"time"

	"portfolio-app/internal/domain/artworks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackIsNeverEmpty(t *testing.T) {
	items := Fallback()
	require.NotEmpty(t, items)

	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		assert.NotEmpty(t, it.Title)
		assert.NotEmpty(t, it.Description)
		assert.NotEmpty(t, it.ImageURL)
		assert.Nil(t, it.CreatedAt)
	}
}

func TestFallbackReturnsACopy(t *testing.T) {
	a := Fallback()
	a[0].Title = "mutated"
	b := Fallback()
	assert.NotEqual(t, "mutated", b[0].Title)
}

func TestMergedPutsRemoteFirst(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	remote := []artworks.Artwork{
		{ID: "r1", Title: "Fresh Piece", Description: "new", ImageURL: "https://cdn/r1.jpg", CreatedAt: created},
	}

	items := Merged(remote)
	require.Len(t, items, 1+len(Fallback()))

	assert.Equal(t, "r1", items[0].ID)
	assert.Equal(t, "Fresh Piece", items[0].Title)
	require.NotNil(t, items[0].CreatedAt)
	assert.True(t, items[0].CreatedAt.Equal(created))

	assert.Equal(t, Fallback()[0].ID, items[1].ID)
}

func TestMergedEmptyRemoteIsFallbackOnly(t *testing.T) {
	items := Merged(nil)
	assert.Equal(t, Fallback(), items)
}
