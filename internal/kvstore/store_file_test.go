package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Isfahan/internal/kvstore"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := t.Context()

	_, ok, err := s.Get(ctx, kvstore.CartSlot)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, kvstore.CartSlot, `{"items":[]}`))

	v, ok, err := s.Get(ctx, kvstore.CartSlot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, v)
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestFileStore_Delete(t *testing.T) {
	s, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestFileStore_HostileKeyStaysInDir(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "../escape/attempt", "v"))

	v, ok, err := s.Get(ctx, "../escape/attempt")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dir, filepath.Dir(filepath.Join(dir, entries[0].Name())))
}

func TestFileStore_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	ctx := t.Context()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Set(ctx, "slot", "value"))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemStore_RoundTrip(t *testing.T) {
	s := kvstore.NewMemStore()
	ctx := t.Context()

	require.NoError(t, s.Set(ctx, "k", "v"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
