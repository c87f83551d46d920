package task

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// KeyPrefix scopes every pending deletion record in the task store.
const KeyPrefix = "del_"

// Task is the sole persistent entity: one message awaiting deletion.
// The value format mirrors what the sweeper needs to issue the upstream
// deleteMessage call without any extra lookups.
type Task struct {
	ChatID    int64  `json:"chat_id"`
	MessageID int64  `json:"message_id"`
	BotToken  string `json:"bot_token"`
	DueAt     int64  `json:"del_time"`
}

// Key encodes the due time into the record key so a prefix listing can be
// filtered by due time without reading values: del_<dueMs>_<chat>_<msg>.
func (t Task) Key() string {
	return fmt.Sprintf("%s%d_%d_%d", KeyPrefix, t.DueAt, t.ChatID, t.MessageID)
}

func (t Task) Encode() ([]byte, error) {
	return json.Marshal(t)
}

func Decode(value []byte) (Task, error) {
	var t Task
	if err := json.Unmarshal(value, &t); err != nil {
		return Task{}, fmt.Errorf("decode task: %w", err)
	}
	return t, nil
}

// KeyDue extracts the due timestamp (epoch ms) from a record key.
func KeyDue(key string) (int64, error) {
	parts := strings.Split(key, "_")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed task key %q", key)
	}

	due, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed due time in task key %q: %w", key, err)
	}
	return due, nil
}

// BotTokenFromPath recovers the bot credential segment from a proxied
// request path, e.g. /bot123:ABC/sendMessage or /file/bot123:ABC/....
func BotTokenFromPath(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, "bot") {
			return seg
		}
	}
	return ""
}
