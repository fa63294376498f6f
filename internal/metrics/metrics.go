package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)
	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_cache_lookups_total",
			Help: "List cache lookups by key and result (hit or miss)",
		},
		[]string{"key", "result"},
	)
	wsClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_websocket_clients",
			Help: "Connected admin websocket clients",
		},
	)
)

// CacheHit records a cache hit for key.
func CacheHit(key string) { cacheLookups.WithLabelValues(key, "hit").Inc() }

// CacheMiss records a cache miss for key.
func CacheMiss(key string) { cacheLookups.WithLabelValues(key, "miss").Inc() }

// SetWebSocketClients records the number of connected websocket clients.
func SetWebSocketClients(n int) { wsClients.Set(float64(n)) }

// Middleware records request counts and latency. The route label is the chi
// route pattern, so path parameters do not blow up cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
