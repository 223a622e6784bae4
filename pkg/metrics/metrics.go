package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics.

var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "path", "status"},
)

var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "path"},
)

var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// Database metrics.

var DbQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"service", "operation", "table"},
)

var DbErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "db_errors_total",
		Help: "Total number of database errors",
	},
	[]string{"service", "operation"},
)

// Redis metrics.

var RedisCacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_hits_total",
		Help: "Total number of Redis cache hits",
	},
	[]string{"service", "key_prefix"},
)

var RedisCacheMisses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_misses_total",
		Help: "Total number of Redis cache misses",
	},
	[]string{"service", "key_prefix"},
)

var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_errors_total",
		Help: "Total number of Redis errors",
	},
	[]string{"service", "operation"},
)

// Kafka metrics.

var KafkaMessagesProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of Kafka messages produced",
	},
	[]string{"service", "topic"},
)

var KafkaProduceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kafka_produce_duration_seconds",
		Help:    "Duration of Kafka produce operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"service", "topic"},
)

var KafkaErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_errors_total",
		Help: "Total number of Kafka errors",
	},
	[]string{"service", "topic", "operation"},
)

// Business metrics.

// PedidosCreated counts orders accepted at checkout, guest or not.
var PedidosCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "loja_pedidos_created_total",
		Help: "Total number of orders created",
	},
)

// PedidosAmount accumulates the client-declared order totals (MZN).
var PedidosAmount = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "loja_pedidos_total_amount",
		Help: "Total declared amount of all orders in meticais",
	},
)

// PedidosByStatus is refreshed periodically by the cron scheduler.
var PedidosByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "loja_pedidos_by_status",
		Help: "Number of orders by status",
	},
	[]string{"status"},
)

var UserLogins = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loja_user_logins_total",
		Help: "Total number of user login attempts",
	},
	[]string{"status"}, // success, failed, inactive
)

var AdminLogins = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loja_admin_logins_total",
		Help: "Total number of admin login attempts",
	},
	[]string{"status"}, // success, failed
)

var FavoritosAdded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "loja_favoritos_added_total",
		Help: "Total number of favorites added",
	},
)

var CatalogSyncs = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "loja_catalog_syncs_total",
		Help: "Total number of external catalog synchronizations",
	},
	[]string{"status"}, // success, failed
)
