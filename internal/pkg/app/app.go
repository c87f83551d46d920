package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	router "tgproxy/internal/app/adapters/http"
	"tgproxy/internal/app/adapters/metrics"
	"tgproxy/internal/app/adapters/telegram"
	"tgproxy/internal/app/domain/intercept"
	"tgproxy/internal/app/domain/sched"
	"tgproxy/internal/app/domain/sweep"
	"tgproxy/internal/app/infrastructure/config"
	"tgproxy/internal/app/infrastructure/storage"
	"tgproxy/internal/app/infrastructure/timers"
	"tgproxy/internal/app/infrastructure/workers"
	"tgproxy/pkg/logger"
)

const (
	sweepTimerID = "sweep"

	poolWorkers   = 8
	poolQueueSize = 256
)

func New(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(filepath.Join(cfg.Logger.Directory, "tgproxy.log"), logger.Rotation{
		MaxSize:    cfg.Logger.Rotation.MaxSize,
		MaxBackups: cfg.Logger.Rotation.MaxBackups,
		MaxAge:     cfg.Logger.Rotation.MaxAge,
		Compress:   cfg.Logger.Rotation.Compress,
	})
	log.SetLogLevel(cfg.Logger.Level)
	gin.SetMode(cfg.Proxy.GinMode)

	if cfg.Proxy.AuthKey == "" {
		log.Warn("Proxy auth key is empty, running unauthenticated")
	}

	// no global timeout: proxied long polls may run for close to a minute;
	// the proxy's own upstream calls carry per-request contexts
	client := &http.Client{Transport: http.DefaultTransport}

	store, err := storage.New(cfg)
	if err != nil {
		log.Error("Failed to open task store", err)
		return err
	}

	metrics.AutoDeleteEnabled.Set(map[bool]float64{true: 1, false: 0}[store != nil])
	if store == nil {
		log.Info("No task store configured, auto-delete disabled")
	}

	pool := workers.New(poolWorkers, poolQueueSize)

	tg := telegram.New(logger.NewPrefixedLogger(log, "telegram"), client, cfg.Proxy.Upstream, cfg.AutoDelete.DeleteRPS)
	interceptor := intercept.New(cfg.AutoDelete.Keywords)
	scheduler := sched.New(logger.NewPrefixedLogger(log, "scheduler"), store, cfg.AutoDelete.Delay, cfg.AutoDelete.Retention)
	sweeper := sweep.New(logger.NewPrefixedLogger(log, "sweeper"), store, tg, pool)

	tm := timers.New()
	if store != nil {
		tm.Add(sweepTimerID, cfg.AutoDelete.SweepInterval, func() {
			sweeper.Run(context.Background(), time.Now())
		})
	}

	r, err := router.NewRouter(logger.NewPrefixedLogger(log, "proxy"), cfg, client, interceptor, scheduler, pool)
	if err != nil {
		return err
	}

	srv := r.NewServer(cfg.Proxy.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Proxy listening", "addr", cfg.Proxy.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", err)
	}

	tm.StopAll()
	pool.Stop()
	if store != nil {
		if err := store.Close(); err != nil {
			log.Error("Failed to close task store", err)
		}
	}

	return nil
}
