package telegram_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgproxy/internal/app/adapters/telegram"
	"tgproxy/pkg/logger"
)

func TestTelegram_DeleteMessage(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]int64
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	defer srv.Close()

	tg := telegram.New(logger.NewNop(), srv.Client(), srv.URL, 100)

	err := tg.DeleteMessage(context.Background(), "bot123:ABC", 42, 7)
	require.NoError(t, err)

	assert.Equal(t, "/bot123:ABC/deleteMessage", gotPath)
	assert.Equal(t, map[string]int64{"chat_id": 42, "message_id": 7}, gotBody)
}

func TestTelegram_DeleteMessage_AlreadyGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: message to delete not found"}`))
	}))
	defer srv.Close()

	tg := telegram.New(logger.NewNop(), srv.Client(), srv.URL, 100)

	// already-deleted upstream is a no-op outcome, not an error
	err := tg.DeleteMessage(context.Background(), "bot123:ABC", 42, 7)
	assert.NoError(t, err)
}

func TestTelegram_DeleteMessage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: not enough rights"}`))
	}))
	defer srv.Close()

	tg := telegram.New(logger.NewNop(), srv.Client(), srv.URL, 100)

	err := tg.DeleteMessage(context.Background(), "bot123:ABC", 42, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough rights")
}
