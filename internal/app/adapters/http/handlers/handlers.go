package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"tgproxy/internal/app/infrastructure/config"
	"tgproxy/internal/app/ports"
	"tgproxy/pkg/logger"
)

type Handlers struct {
	log         logger.Logger
	cfg         *config.Config
	client      *http.Client
	upstream    *url.URL
	interceptor ports.InterceptPort
	scheduler   ports.SchedulerPort
	pool        ports.PoolPort
}

func New(log logger.Logger, cfg *config.Config, client *http.Client,
	interceptor ports.InterceptPort, scheduler ports.SchedulerPort, pool ports.PoolPort) (*Handlers, error) {
	upstream, err := url.Parse(cfg.Proxy.Upstream)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}

	return &Handlers{
		log:         log,
		cfg:         cfg,
		client:      client,
		upstream:    upstream,
		interceptor: interceptor,
		scheduler:   scheduler,
		pool:        pool,
	}, nil
}
