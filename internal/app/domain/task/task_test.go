package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgproxy/internal/app/domain/task"
)

func TestTask_Key(t *testing.T) {
	t.Parallel()

	tk := task.Task{ChatID: 42, MessageID: 7, BotToken: "bot123:ABC", DueAt: 1700000900000}
	assert.Equal(t, "del_1700000900000_42_7", tk.Key())

	neg := task.Task{ChatID: -100123456, MessageID: 9, DueAt: 1700000900000}
	assert.Equal(t, "del_1700000900000_-100123456_9", neg.Key())
}

func TestKeyDue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		want    int64
		wantErr bool
	}{
		{"valid key", "del_1700000900000_42_7", 1700000900000, false},
		{"negative chat id", "del_1700000900000_-100123456_9", 1700000900000, false},
		{"no separators", "garbage", 0, true},
		{"non-numeric due", "del_abc_42_7", 0, true},
		{"empty key", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := task.KeyDue(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	tk := task.Task{ChatID: 42, MessageID: 7, BotToken: "bot123:ABC", DueAt: 1700000900000}

	value, err := tk.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"chat_id":42,"message_id":7,"bot_token":"bot123:ABC","del_time":1700000900000}`, string(value))

	got, err := task.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, tk, got)

	_, err = task.Decode([]byte("not json"))
	require.Error(t, err)
}

func TestBotTokenFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"send path", "/bot123:ABC/sendMessage", "bot123:ABC"},
		{"file path", "/file/bot123:ABC/photos/file_1.jpg", "bot123:ABC"},
		{"no token", "/healthz", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, task.BotTokenFromPath(tt.path))
		})
	}
}
