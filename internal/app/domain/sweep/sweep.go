package sweep

import (
	"context"
	"log/slog"
	"time"

	"tgproxy/internal/app/adapters/metrics"
	"tgproxy/internal/app/domain/task"
	"tgproxy/internal/app/ports"
	"tgproxy/pkg/logger"
)

const taskTimeout = 30 * time.Second

// Sweeper executes due deletion tasks. Each task gets exactly one deletion
// attempt and its key is removed regardless of the outcome; the store-level
// expiration is the only backstop beyond that. Per-task work is dispatched
// to the pool so one stuck upstream call cannot hold up the batch.
type Sweeper struct {
	log   logger.Logger
	store ports.TaskStorePort
	tg    ports.TelegramPort
	pool  ports.PoolPort
}

func New(log logger.Logger, store ports.TaskStorePort, tg ports.TelegramPort, pool ports.PoolPort) *Sweeper {
	return &Sweeper{
		log:   log,
		store: store,
		tg:    tg,
		pool:  pool,
	}
}

// Run scans pending tasks once and enqueues the due ones. It returns as
// soon as the work is dispatched; overlapping runs are tolerated because
// the per-key cleanup is idempotent.
func (s *Sweeper) Run(ctx context.Context, now time.Time) {
	if s.store == nil {
		return
	}

	started := time.Now()
	keys, err := s.store.List(ctx, task.KeyPrefix)
	if err != nil {
		s.log.Error("Failed to list pending tasks", err)
		return
	}

	metrics.PendingTasks.Set(float64(len(keys)))

	nowMs := now.UnixMilli()
	for _, key := range keys {
		due, err := task.KeyDue(key)
		if err != nil {
			// one malformed key must not abort the batch
			s.log.Warn("Skipping malformed task key", slog.String("key", key))
			continue
		}

		if due > nowMs {
			continue
		}

		if err := s.pool.Submit(func() { s.process(key) }); err != nil {
			s.log.Warn("Dropping due task, worker queue full", slog.String("key", key))
		}
	}

	metrics.SweepDuration.Observe(time.Since(started).Seconds())
}

func (s *Sweeper) process(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Error("Failed to fetch task", err, slog.String("key", key))
		return
	}

	if ok {
		tk, err := task.Decode(value)
		if err != nil {
			s.log.Warn("Dropping undecodable task", slog.String("key", key))
		} else if err := s.tg.DeleteMessage(ctx, tk.BotToken, tk.ChatID, tk.MessageID); err != nil {
			// at most one attempt; the key is removed below either way
			metrics.Deletions.WithLabelValues("error").Inc()
			s.log.Warn("Upstream deletion failed", slog.String("key", key), slog.Any("error", err.Error()))
		} else {
			metrics.Deletions.WithLabelValues("ok").Inc()
		}
	}

	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Error("Failed to remove task key", err, slog.String("key", key))
	}
}
