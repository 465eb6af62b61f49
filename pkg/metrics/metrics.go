package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueriesTotal   *prometheus.CounterVec
	DBQueryDuration  *prometheus.HistogramVec
	DBConnsOpen      prometheus.Gauge
	DBConnsIdle      prometheus.Gauge
	DBConnsInUse     prometheus.Gauge
	DBConnsWaitTotal prometheus.Gauge

	// Кэш доступности
	AvailabilityCacheHits      *prometheus.CounterVec
	AvailabilityCacheMisses    *prometheus.CounterVec
	AvailabilityFallbacksTotal *prometheus.CounterVec

	// Внешний источник броней
	ExternalRequestsTotal   *prometheus.CounterVec
	ExternalRequestDuration *prometheus.HistogramVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		DBConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}),

		DBConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle database connections",
			ConstLabels: constLabels,
		}),

		DBConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "In-use database connections",
			ConstLabels: constLabels,
		}),

		DBConnsWaitTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_wait_total",
			Help:        "Cumulative connections waited for",
			ConstLabels: constLabels,
		}),

		AvailabilityCacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_hits_total",
			Help:        "Preload cache hits (fresh entry found)",
			ConstLabels: constLabels,
		}, []string{"tour_type"}),

		AvailabilityCacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_misses_total",
			Help:        "Preload cache misses (entry absent or stale)",
			ConstLabels: constLabels,
		}, []string{"tour_type"}),

		AvailabilityFallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_fallbacks_total",
			Help:        "Days answered with fallback slots after an external source failure",
			ConstLabels: constLabels,
		}, []string{"tour_type"}),

		ExternalRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "external_reservation_requests_total",
			Help:        "Requests to the external reservation source",
			ConstLabels: constLabels,
		}, []string{"status"}),

		ExternalRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "external_reservation_request_duration_seconds",
			Help:        "External reservation source latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
	}
}
