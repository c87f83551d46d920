package ports

import (
	"context"
	"time"
)

// TaskStorePort is the durable key-value contract the auto-delete subsystem
// relies on: atomic per-key put/get/delete plus prefix listing. Keys carry a
// store-level expiration as a backstop purge, independent of the sweep.
type TaskStorePort interface {
	Put(ctx context.Context, key string, value []byte, expiresAt time.Time) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
