package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgproxy/internal/app/infrastructure/storage"
	"tgproxy/internal/app/ports"
)

func newBackends(t *testing.T) map[string]ports.TaskStorePort {
	t.Helper()

	sqlite, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	mem := storage.NewMemoryStore()
	t.Cleanup(func() { _ = mem.Close() })

	return map[string]ports.TaskStorePort{
		"memory": mem,
		"sqlite": sqlite,
	}
}

func TestTaskStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Put(ctx, "del_1_42_7", []byte(`{"chat_id":42}`), time.Now().Add(time.Hour))
			require.NoError(t, err)

			value, ok, err := store.Get(ctx, "del_1_42_7")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`{"chat_id":42}`), value)

			// overwrite is an upsert
			require.NoError(t, store.Put(ctx, "del_1_42_7", []byte(`{"chat_id":43}`), time.Now().Add(time.Hour)))
			value, ok, err = store.Get(ctx, "del_1_42_7")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte(`{"chat_id":43}`), value)

			require.NoError(t, store.Delete(ctx, "del_1_42_7"))
			_, ok, err = store.Get(ctx, "del_1_42_7")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting an absent key is a no-op
			require.NoError(t, store.Delete(ctx, "del_1_42_7"))
		})
	}
}

func TestTaskStore_ListByPrefix(t *testing.T) {
	ctx := context.Background()

	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			exp := time.Now().Add(time.Hour)
			require.NoError(t, store.Put(ctx, "del_100_1_1", []byte("a"), exp))
			require.NoError(t, store.Put(ctx, "del_200_2_2", []byte("b"), exp))
			require.NoError(t, store.Put(ctx, "other_300_3_3", []byte("c"), exp))

			keys, err := store.List(ctx, "del_")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"del_100_1_1", "del_200_2_2"}, keys)
		})
	}
}

func TestTaskStore_Expiration(t *testing.T) {
	ctx := context.Background()

	for name, store := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(ctx, "del_1_9_9", []byte("stale"), time.Now().Add(-time.Minute)))
			require.NoError(t, store.Put(ctx, "del_2_9_9", []byte("fresh"), time.Now().Add(time.Hour)))

			_, ok, err := store.Get(ctx, "del_1_9_9")
			require.NoError(t, err)
			assert.False(t, ok, "expired key must not be returned")

			keys, err := store.List(ctx, "del_")
			require.NoError(t, err)
			assert.Equal(t, []string{"del_2_9_9"}, keys)
		})
	}
}
