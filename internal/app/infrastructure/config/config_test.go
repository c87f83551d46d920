package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgproxy/internal/app/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Proxy.ListenAddr)
	assert.Equal(t, "https://api.telegram.org", cfg.Proxy.Upstream)
	assert.Empty(t, cfg.Proxy.AuthKey)
	assert.Empty(t, cfg.AutoDelete.Keywords)
	assert.Equal(t, 15*time.Minute, cfg.AutoDelete.Delay)
	assert.Equal(t, 24*time.Hour, cfg.AutoDelete.Retention)
	assert.Equal(t, time.Minute, cfg.AutoDelete.SweepInterval)
	assert.Equal(t, config.BackendDisabled, cfg.Store.Backend)
	assert.False(t, cfg.AutoDeleteEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TGPROXY_PROXY_AUTH_KEY", "sekret")
	t.Setenv("TGPROXY_AUTODELETE_KEYWORDS", "TRIGGERWORD, other , ,last")
	t.Setenv("TGPROXY_AUTODELETE_DELAY", "5m")
	t.Setenv("TGPROXY_STORE_BACKEND", "memory")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "sekret", cfg.Proxy.AuthKey)
	assert.Equal(t, []string{"TRIGGERWORD", "other", "last"}, cfg.AutoDelete.Keywords)
	assert.Equal(t, 5*time.Minute, cfg.AutoDelete.Delay)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.True(t, cfg.AutoDeleteEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		wantE string
	}{
		{"bad backend", map[string]string{"TGPROXY_STORE_BACKEND": "etcd"}, "store.backend"},
		{"bad level", map[string]string{"TGPROXY_LOGGER_LEVEL": "loud"}, "logger.level"},
		{"sweep interval too small", map[string]string{"TGPROXY_AUTODELETE_SWEEP_INTERVAL": "100ms"}, "sweep_interval"},
		{"relative upstream", map[string]string{"TGPROXY_PROXY_UPSTREAM": "api.telegram.org"}, "proxy.upstream"},
		{"mysql without username", map[string]string{"TGPROXY_STORE_BACKEND": "mysql"}, "store.mysql.username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantE)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("does-not-exist.yaml")
	require.Error(t, err)
}
