package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AutoDeleteEnabled - whether a task store is configured.
	AutoDeleteEnabled = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tgproxy_autodelete_enabled",
		Help: "Whether the auto-delete subsystem is enabled (1) or disabled (0)",
	})

	// ProxiedRequests - forwarded requests by outcome.
	ProxiedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgproxy_proxied_requests_total",
			Help: "Total number of proxied requests per outcome",
		}, []string{"outcome"},
	)

	// UpstreamLatency - time spent waiting on the upstream API per forward.
	UpstreamLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tgproxy_upstream_latency_seconds",
			Help:    "Latency of forwarded upstream calls",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 14),
		},
	)

	// TasksScheduled - deletion tasks persisted by the scheduler.
	TasksScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tgproxy_tasks_scheduled_total",
		Help: "Total number of deletion tasks persisted",
	})

	// Deletions - upstream deletion attempts by result.
	Deletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgproxy_deletions_total",
			Help: "Total number of upstream message deletions per result",
		}, []string{"result"},
	)

	// PendingTasks - pending task keys seen by the last sweep.
	PendingTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tgproxy_pending_tasks",
		Help: "Number of pending deletion tasks at the last sweep",
	})

	// SweepDuration - time to scan and dispatch one sweep batch.
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tgproxy_sweep_duration_seconds",
			Help:    "Duration of one sweep scan",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
		},
	)
)
