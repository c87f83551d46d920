package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tgproxy/internal/app/adapters/http/handlers"
	"tgproxy/internal/app/adapters/http/middlewares"
	"tgproxy/internal/app/infrastructure/config"
	"tgproxy/internal/app/ports"
	"tgproxy/pkg/logger"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log logger.Logger
	cfg *config.Config
}

func NewRouter(log logger.Logger, cfg *config.Config, client *http.Client,
	interceptor ports.InterceptPort, scheduler ports.SchedulerPort, pool ports.PoolPort) (*Router, error) {
	h, err := handlers.New(log, cfg, client, interceptor, scheduler, pool)
	if err != nil {
		return nil, err
	}

	r := &Router{
		router:      gin.New(),
		handlers:    h,
		middlewares: middlewares.New(),
		log:         log,
		cfg:         cfg,
	}

	r.router.Use(gin.Recovery(), r.middlewares.CORS(), r.middlewares.RequestID())

	r.router.GET("/", h.HealthHandler)
	r.router.GET("/healthz", h.HealthHandler)

	if cfg.Proxy.AdminPassword != "" {
		accounts := gin.Accounts{cfg.Proxy.AdminUser: cfg.Proxy.AdminPassword}

		pprofGroup := r.router.Group("/", gin.BasicAuth(accounts))
		pprof.Register(pprofGroup)

		r.router.GET("/metrics", gin.BasicAuth(accounts), gin.WrapH(promhttp.Handler()))
		r.router.GET("/status", gin.BasicAuth(accounts), h.StatusHandler)
	}

	// everything else is the proxy surface: preflight first, then the
	// /bot|/file/bot gate, then auth, then the forward itself
	r.router.NoRoute(
		r.middlewares.Preflight(),
		r.middlewares.ProxyGate(),
		r.middlewares.ProxyAuth(cfg.Proxy.AuthKey),
		h.ProxyHandler,
	)

	return r, nil
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// NewServer leaves read/write timeouts unset on purpose: getUpdates long
// polls can legitimately hold a connection open for close to a minute.
func (r *Router) NewServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
