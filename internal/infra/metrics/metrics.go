// Package metrics collects Prometheus metrics and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the HTTP middleware and the
// authentication use cases.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordAuthentication(strategy, result string)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authentications *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evently_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "evently_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authentications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evently_authentications_total",
			Help: "Authentication attempts by strategy and result.",
		}, []string{"strategy", "result"}),
	}

	reg.MustRegister(c.requests, c.requestDuration, c.authentications)

	return c
}

// RecordRequest records a finished HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthentication records one strategy outcome.
func (c *Collector) RecordAuthentication(strategy, result string) {
	c.authentications.WithLabelValues(strategy, result).Inc()
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler returns the HTTP handler for Prometheus scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Tests use it where metrics are irrelevant.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}

func (Nop) RecordAuthentication(string, string) {}
