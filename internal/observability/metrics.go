package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "storefront_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// AuthCodeRequests tracks one-time code requests
	AuthCodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_auth_code_requests_total",
			Help: "Number of one-time code requests",
		},
		[]string{"status"},
	)

	// AuthVerifications tracks one-time code verification attempts
	AuthVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_auth_verifications_total",
			Help: "Number of one-time code verification attempts",
		},
		[]string{"status"},
	)

	// RelayEvents tracks events forwarded to the automation webhook
	RelayEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_relay_events_total",
			Help: "Number of events forwarded to the automation webhook",
		},
		[]string{"type", "status"},
	)

	// RateLimitRejections tracks rate-limited requests
	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_rate_limit_rejections_total",
			Help: "Number of requests rejected by the rate limiter",
		},
		[]string{"tier"},
	)

	// OrdersCreated tracks created orders
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Number of orders created",
		},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_active_connections",
			Help: "Number of active connections",
		},
	)
)
