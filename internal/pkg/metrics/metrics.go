package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics 所有 Prometheus 指标，方法对 nil 接收者安全
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DashboardQueryDuration *prometheus.HistogramVec
	DashboardErrorsTotal   *prometheus.CounterVec
	DashboardCacheTotal    *prometheus.CounterVec
}

// NewMetrics 创建指标并注册到 registry
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketplace_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DashboardQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketplace_dashboard_query_duration_seconds",
				Help:    "Dashboard aggregation duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"operation"},
		),
		DashboardErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_dashboard_errors_total",
				Help: "Total number of failed dashboard aggregations",
			},
			[]string{"operation"},
		),
		DashboardCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_dashboard_cache_total",
				Help: "Dashboard cache lookups by result",
			},
			[]string{"operation", "result"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DashboardQueryDuration,
		m.DashboardErrorsTotal,
		m.DashboardCacheTotal,
	)
	return m
}

// RegisterRuntime 注册 Go 运行时和连接池指标
func RegisterRuntime(registry *prometheus.Registry, db *sql.DB) {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if db != nil {
		registry.MustRegister(collectors.NewDBStatsCollector(db, "marketplace"))
	}
}

func (m *Metrics) ObserveHTTP(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveDashboard 记录一次看板聚合的耗时，err 非空时计入错误数
func (m *Metrics) ObserveDashboard(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.DashboardQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.DashboardErrorsTotal.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) RecordCache(operation string, hit bool) {
	if m == nil {
		return
	}
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	m.DashboardCacheTotal.WithLabelValues(operation, result).Inc()
}

// Handler /metrics
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
