package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"tgproxy/pkg/logger"
)

// Telegram issues the Bot API calls the proxy makes on its own behalf.
// Deletions are rate limited so a large sweep batch cannot trip the
// upstream per-bot limits.
type Telegram struct {
	log     logger.Logger
	client  *http.Client
	origin  string
	limiter *rate.Limiter
}

func New(log logger.Logger, client *http.Client, origin string, deleteRPS float64) *Telegram {
	return &Telegram{
		log:     log,
		client:  client,
		origin:  strings.TrimRight(origin, "/"),
		limiter: rate.NewLimiter(rate.Limit(deleteRPS), 1),
	}
}

// DeleteMessage removes a message via /<botToken>/deleteMessage. An
// already-deleted message is a no-op outcome, not an error.
func (t *Telegram) DeleteMessage(ctx context.Context, botToken string, chatID, messageID int64) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqBody := DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal deleteMessage body: %w", err)
	}

	url := fmt.Sprintf("%s/%s/deleteMessage", t.origin, botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("create deleteMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send deleteMessage request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("deleteMessage returned status %d: %s", resp.StatusCode, string(body))
	}

	if !apiResp.OK {
		if strings.Contains(apiResp.Description, "message to delete not found") {
			t.log.Debug("Message already gone upstream",
				slog.Int64("chat_id", chatID), slog.Int64("message_id", messageID))
			return nil
		}
		return fmt.Errorf("deleteMessage failed: %d %s", apiResp.ErrorCode, apiResp.Description)
	}

	t.log.Info("Message deleted upstream",
		slog.Int64("chat_id", chatID), slog.Int64("message_id", messageID))
	return nil
}
