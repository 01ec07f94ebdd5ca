package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/timetable-sync/internal/domain/ports"
)

var _ ports.KeyValueStore = (*Store)(nil)

// setupTestStore creates a file-backed SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.Context(), filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		store, err := Open(t.Context(), ":memory:")
		require.NoError(t, err)
		defer store.Close()
		assert.Equal(t, ":memory:", store.Path())
	})

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", ".ttsync", "snapshots.db")
		store, err := Open(t.Context(), path)
		require.NoError(t, err)
		defer store.Close()
		assert.FileExists(t, path)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewStore("")
		require.Error(t, err)
	})
}

func TestStore_EnsureSchema_Idempotent(t *testing.T) {
	store := setupTestStore(t)

	// Should not error when called again
	require.NoError(t, store.EnsureSchema(t.Context()))
}

func TestStore_GetPutDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := t.Context()

	value, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Put(ctx, "k", []byte(`{"version":1}`)))
	value, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), value)

	require.NoError(t, store.Put(ctx, "k", []byte(`{"version":2}`)))
	value, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":2}`), value)

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	value, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Put(t.Context(), "k", nil))

	value, err := store.Get(t.Context(), "k")
	require.NoError(t, err)
	assert.NotNil(t, value)
	assert.Empty(t, value)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")

	first, err := Open(t.Context(), path)
	require.NoError(t, err)
	require.NoError(t, first.Put(t.Context(), "draft", []byte("payload")))
	require.NoError(t, first.Close())

	second, err := Open(t.Context(), path)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get(t.Context(), "draft")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
}

func TestStore_UpdatedAt(t *testing.T) {
	store := setupTestStore(t)
	fixed := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	original := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = original })

	_, ok, err := store.UpdatedAt(t.Context(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(t.Context(), "k", []byte("v")))

	at, ok, err := store.UpdatedAt(t.Context(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, fixed.Equal(at))
}

func TestStore_ClosedReturnsErrors(t *testing.T) {
	store, err := Open(t.Context(), filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(t.Context(), "k")
	assert.Error(t, err)
	assert.Error(t, store.Put(t.Context(), "k", []byte("v")))
	assert.Error(t, store.Delete(t.Context(), "k"))
}
