package storage

import (
	"context"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a non-durable task store for tests and single-process
// setups where survival across restarts is not required. Per-key expiration
// is tracked in the entry itself; the otter TTL below is only a coarse
// eviction backstop for entries nobody reads again.
type MemoryStore struct {
	cache *otter.Cache[string, memoryEntry]
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: otter.Must(&otter.Options[string, memoryEntry]{
			ExpiryCalculator: otter.ExpiryAccessing[string, memoryEntry](48 * time.Hour),
		}),
		now: time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte, expiresAt time.Time) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.cache.Set(key, memoryEntry{value: v, expiresAt: expiresAt})
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.cache.GetIfPresent(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.After(s.now()) {
		s.cache.Invalidate(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Invalidate(key)
	return nil
}

func (s *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	now := s.now()

	var keys []string
	for k, e := range s.cache.All() {
		if !strings.HasPrefix(k, prefix) || !e.expiresAt.After(now) {
			continue
		}
		keys = append(keys, k)
	}

	return keys, nil
}

func (s *MemoryStore) Close() error {
	s.cache.InvalidateAll()
	return nil
}
