package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_cadastro_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// ValidationFailures tracks rejected writes by field
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_validation_failures_total",
			Help: "Number of validation failures",
		},
		[]string{"field"},
	)

	// DuplicateCPFConflicts tracks natural-key conflicts
	DuplicateCPFConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "app_cadastro_duplicate_cpf_conflicts_total",
			Help: "Number of writes rejected by the CPF uniqueness constraint",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_cadastro_active_connections",
			Help: "Number of active connections",
		},
	)
)
