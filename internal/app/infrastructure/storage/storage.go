package storage

import (
	"fmt"

	"tgproxy/internal/app/infrastructure/config"
	"tgproxy/internal/app/ports"
)

// New picks the task store backend from configuration. A nil store (no
// backend configured) disables the auto-delete subsystem entirely.
func New(cfg *config.Config) (ports.TaskStorePort, error) {
	switch cfg.Store.Backend {
	case config.BackendDisabled:
		return nil, nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.Store.SQLitePath)
	case config.BackendMySQL:
		return NewMySQLStore(cfg.Store.MySQL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
