package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrar_record_writes_total",
			Help: "Total number of record writes per entity and operation",
		},
		[]string{"entity", "operation"},
	)

	ConflictRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrar_conflict_rejections_total",
			Help: "Total number of writes rejected by a uniqueness guard",
		},
		[]string{"entity"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
