package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Isfahan/internal/catalog"
)

func TestMemStore_ListPreservesSeedOrder(t *testing.T) {
	store := catalog.NewMemStore()

	books, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, books, 15)

	for i, b := range books {
		assert.NotEmpty(t, b.ID)
		if i > 0 {
			// Seed ids are "1".."15" in listing order.
			assert.NotEqual(t, books[i-1].ID, b.ID)
		}
	}
	assert.Equal(t, "1", books[0].ID)
	assert.Equal(t, "15", books[14].ID)
}

func TestMemStore_Get(t *testing.T) {
	store := catalog.NewMemStore()

	b, ok, err := store.Get(t.Context(), "6")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Project Hail Mary", b.Title)

	_, ok, err = store.Get(t.Context(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_Featured(t *testing.T) {
	store := catalog.NewMemStore()

	featured, err := store.Featured(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	for _, b := range featured {
		assert.True(t, b.Featured, "book %s should be featured", b.ID)
	}
}

func TestMemStore_SetFeatured(t *testing.T) {
	store := catalog.NewMemStore()

	ok, err := store.SetFeatured(t.Context(), "4", true)
	require.NoError(t, err)
	require.True(t, ok)

	b, found, err := store.Get(t.Context(), "4")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, b.Featured)

	ok, err = store.SetFeatured(t.Context(), "missing", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_Delete(t *testing.T) {
	store := catalog.NewMemStore()

	ok, err := store.Delete(t.Context(), "3")
	require.NoError(t, err)
	require.True(t, ok)

	_, found, err := store.Get(t.Context(), "3")
	require.NoError(t, err)
	assert.False(t, found)

	books, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, books, 14)

	// Deleting what is already gone is reported, not an error.
	ok, err = store.Delete(t.Context(), "3")
	require.NoError(t, err)
	assert.False(t, ok)

	// Remaining books keep their order and stay addressable.
	b, found, err := store.Get(t.Context(), "4")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Atomic Habits", b.Title)
}
