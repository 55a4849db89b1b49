package localcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyUser, map[string]string{"name": "Ana", "city": "X"}))

	// A fresh store instance must see what the first one wrote.
	reopened, err := NewStore(path)
	require.NoError(t, err)

	var user map[string]string
	found, err := reopened.Get(KeyUser, &user)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "X", user["city"])
}

func TestStoreMissingKey(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	var out []string
	found, err := store.Get(KeyObjects, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	var out int
	found, err := store.Get(KeySchemaVersion, &out)
	require.NoError(t, err)
	assert.False(t, found)
}
