// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	Registry *prometheus.Registry

	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	cacheCommands *prometheus.CounterVec
	logDrops      map[string]bool
}

// New creates the collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		logDrops: make(map[string]bool),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of response latency (seconds) for HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		cacheCommands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_commands_total",
				Help: "Redis commands issued by the cache, by result",
			},
			[]string{"command", "result"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.cacheCommands,
	)
	return m
}

// ObserveRequest records one handled request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RedisCommand records a cache command.
func (m *Metrics) RedisCommand(command string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.cacheCommands.WithLabelValues(command, result).Inc()
}

// RegisterLogDrops exposes a counter of records a background log writer
// dropped, labelled by source. A source is registered once.
func (m *Metrics) RegisterLogDrops(source string, dropped func() int64) {
	if m.logDrops[source] {
		return
	}
	m.Registry.MustRegister(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name:        "log_records_dropped_total",
			Help:        "Log records that could not be persisted to the logs database",
			ConstLabels: prometheus.Labels{"source": source},
		},
		func() float64 { return float64(dropped()) },
	))
	m.logDrops[source] = true
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
