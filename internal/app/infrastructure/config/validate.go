package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

func validate(cfg *Config) error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.Logger.Level != "" && !validLevels[cfg.Logger.Level] {
		return fmt.Errorf("logger.level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.Logger.Level)
	}

	if cfg.Proxy.ListenAddr == "" {
		return errors.New("proxy.listen_addr is required")
	}
	u, err := url.Parse(cfg.Proxy.Upstream)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("proxy.upstream must be an absolute URL; got %q", cfg.Proxy.Upstream)
	}

	cfg.AutoDelete.Keywords = normalizeKeywords(cfg.AutoDelete.Keywords)

	if cfg.AutoDelete.Delay <= 0 {
		return errors.New("autodelete.delay must be positive")
	}
	if cfg.AutoDelete.Retention <= 0 {
		return errors.New("autodelete.retention must be positive")
	}
	if cfg.AutoDelete.SweepInterval < time.Second {
		return errors.New("autodelete.sweep_interval must be at least 1s")
	}
	if cfg.AutoDelete.DeleteRPS <= 0 {
		return errors.New("autodelete.delete_rps must be positive")
	}

	switch cfg.Store.Backend {
	case BackendDisabled, BackendMemory:
	case BackendSQLite:
		if cfg.Store.SQLitePath == "" {
			return errors.New("store.sqlite_path is required for the sqlite backend")
		}
	case BackendMySQL:
		if cfg.Store.MySQL.Username == "" {
			return errors.New("store.mysql.username is required for the mysql backend")
		}
		if cfg.Store.MySQL.DBName == "" {
			return errors.New("store.mysql.dbname is required for the mysql backend")
		}
	default:
		return fmt.Errorf("store.backend must be one of memory, sqlite, mysql or empty; got %s", cfg.Store.Backend)
	}

	return nil
}

// normalizeKeywords trims each entry and drops empties. The environment
// surface delivers one comma-separated string, which viper has already split.
func normalizeKeywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	return out
}
