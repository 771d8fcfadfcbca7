// Package metrics instruments the HTTP transport with Prometheus collectors.
//
// Metrics:
//   - zsr_requests_total{method, status} (Counter): requests by method and
//     HTTP status, status "error" when the transport failed
//   - zsr_request_duration_seconds{method} (Histogram): exchange duration
//   - zsr_errors_total{class} (Counter): failures by class (client, server,
//     network)
//   - zsr_in_flight_requests (Gauge): requests currently on the wire
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Error classes.
const (
	ClassClient  = "client"
	ClassServer  = "server"
	ClassNetwork = "network"
)

// Collector holds the transport collectors.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	inFlight prometheus.Gauge
}

// NewCollector registers the transport collectors on reg. A nil reg uses
// prometheus.DefaultRegisterer. Collectors already registered on reg by an
// earlier call are reused, so clients built from one registry share them.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &Collector{
		requests: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zsr_requests_total",
			Help: "Total zsr.octane.gg requests by method and HTTP status",
		}, []string{"method", "status"})),
		duration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zsr_request_duration_seconds",
			Help:    "Duration of zsr.octane.gg requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"})),
		errors: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zsr_errors_total",
			Help: "Failed zsr.octane.gg requests by error class",
		}, []string{"class"})),
		inFlight: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zsr_in_flight_requests",
			Help: "zsr.octane.gg requests currently in flight",
		})),
	}
}

// register adds c to reg, or returns the equal collector reg already holds.
// Any other registration failure panics, as promauto does.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing
		}
	}

	panic(err)
}

// RequestStarted marks a request as in flight.
func (c *Collector) RequestStarted() {
	c.inFlight.Inc()
}

// ObserveRequest records a finished exchange. A zero status means the
// transport failed before a response arrived.
func (c *Collector) ObserveRequest(method string, status int, duration time.Duration) {
	c.inFlight.Dec()

	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}

	c.requests.WithLabelValues(method, label).Inc()
	c.duration.WithLabelValues(method).Observe(duration.Seconds())

	if class := Classify(status); class != "" {
		c.errors.WithLabelValues(class).Inc()
	}
}

// Classify maps a status to an error class, or "" for success.
func Classify(status int) string {
	switch {
	case status == 0:
		return ClassNetwork
	case status >= 500: //nolint:mnd
		return ClassServer
	case status >= 400: //nolint:mnd
		return ClassClient
	default:
		return ""
	}
}
