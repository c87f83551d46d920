package sched

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tgproxy/internal/app/adapters/metrics"
	"tgproxy/internal/app/adapters/telegram"
	"tgproxy/internal/app/domain/task"
	"tgproxy/internal/app/ports"
	"tgproxy/pkg/logger"
)

const putTimeout = 5 * time.Second

// Scheduler persists a deletion task after a monitored send succeeded.
// Everything here is best-effort: the caller already has its response, so
// any failure is logged and swallowed.
type Scheduler struct {
	log       logger.Logger
	store     ports.TaskStorePort
	delay     time.Duration
	retention time.Duration
	now       func() time.Time
}

func New(log logger.Logger, store ports.TaskStorePort, delay, retention time.Duration) *Scheduler {
	return &Scheduler{
		log:       log,
		store:     store,
		delay:     delay,
		retention: retention,
		now:       time.Now,
	}
}

// ScheduleFromResponse parses the upstream send response and, when it
// carries the created message's identifiers, writes the deletion task.
// Any other response shape skips scheduling silently.
func (s *Scheduler) ScheduleFromResponse(reqPath string, respBody []byte) {
	if s.store == nil {
		return
	}

	var env telegram.SendResponse
	if err := json.Unmarshal(respBody, &env); err != nil {
		s.log.Debug("Skipping schedule: response is not JSON", slog.String("path", reqPath))
		return
	}

	if !env.OK || env.Result == nil || env.Result.MessageID == 0 || env.Result.Chat.ID == 0 {
		s.log.Debug("Skipping schedule: response has no message identifiers", slog.String("path", reqPath))
		return
	}

	botToken := task.BotTokenFromPath(reqPath)
	if botToken == "" {
		s.log.Debug("Skipping schedule: no bot token in path", slog.String("path", reqPath))
		return
	}

	due := s.now().Add(s.delay)
	tk := task.Task{
		ChatID:    env.Result.Chat.ID,
		MessageID: env.Result.MessageID,
		BotToken:  botToken,
		DueAt:     due.UnixMilli(),
	}

	value, err := tk.Encode()
	if err != nil {
		s.log.Error("Failed to encode deletion task", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), putTimeout)
	defer cancel()

	if err := s.store.Put(ctx, tk.Key(), value, due.Add(s.retention)); err != nil {
		s.log.Error("Failed to persist deletion task", err,
			slog.Int64("chat_id", tk.ChatID), slog.Int64("message_id", tk.MessageID))
		return
	}

	metrics.TasksScheduled.Inc()
	s.log.Info("Deletion scheduled",
		slog.Int64("chat_id", tk.ChatID),
		slog.Int64("message_id", tk.MessageID),
		slog.Int64("due_at", tk.DueAt))
}
