package kv_test

import (
	"testing"

	"github.com/mauv0809/bvtracker/internal/database"
	"github.com/mauv0809/bvtracker/internal/kv"
	"github.com/mauv0809/bvtracker/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (kv.Store, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", migrations.FS)
	require.NoError(t, err)

	return kv.New(db), teardown
}

func TestStores(t *testing.T) {
	sqliteStore, teardown := setupTestDB(t)
	defer teardown()

	stores := map[string]kv.Store{
		"sqlite": sqliteStore,
		"memory": kv.NewMemory(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			// 1. Missing key is not an error
			_, ok, err := store.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			// 2. Set then get
			require.NoError(t, store.Set("key", []byte(`[1,2]`)))
			value, ok, err := store.Get("key")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[1,2]`, string(value))

			// 3. Overwrite replaces the whole value
			require.NoError(t, store.Set("key", []byte(`[]`)))
			value, _, err = store.Get("key")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(value))

			// 4. Delete removes the key, deleting twice is fine
			require.NoError(t, store.Delete("key"))
			require.NoError(t, store.Delete("key"))
			_, ok, err = store.Get("key")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	store := kv.NewMemory()
	value := []byte("abc")
	require.NoError(t, store.Set("k", value))
	value[0] = 'x'

	got, _, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
