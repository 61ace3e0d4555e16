package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records request counts and latencies per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	charts   *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// New registers the service collectors on reg. A nil registry yields a
// recorder whose methods are no-ops.
func New(reg *prometheus.Registry) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	charts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "charts_built_total",
		Help: "Charts built, by chart and cache outcome.",
	}, []string{"chart", "cache"})
	reg.MustRegister(requests, duration, charts)
	return &HTTPMetrics{
		requests: requests,
		duration: duration,
		charts:   charts,
		gatherer: reg,
	}
}

// Middleware observes every request passing through the app.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil || m.requests == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.requests.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route, c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}

// ChartBuilt counts a chart response; hit reports whether it came from cache.
func (m *HTTPMetrics) ChartBuilt(chart string, hit bool) {
	if m == nil || m.charts == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.charts.WithLabelValues(chart, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *HTTPMetrics) Handler() fiber.Handler {
	if m == nil || m.gatherer == nil {
		return func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) }
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
