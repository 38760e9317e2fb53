// Package metrics holds the Prometheus collectors for report generation and
// the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels a finished generation.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeFailed      Outcome = "failed"
	OutcomeInvalid     Outcome = "invalid"
)

// Generation latency is dominated by the model, so buckets run to ten minutes.
var generationBuckets = []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120, 300, 600}

type Recorder struct {
	namespace  string
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	generations         *prometheus.CounterVec
	generationDuration  *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

type Option func(*Recorder)

func WithNamespace(ns string) Option {
	return func(r *Recorder) {
		r.namespace = ns
	}
}

// WithRegistry registers every collector on reg and serves it from Handler.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Recorder) {
		r.registerer = reg
		r.gatherer = reg
	}
}

// New builds a Recorder. Without WithRegistry it creates a private registry
// carrying the Go and process collectors.
func New(opts ...Option) *Recorder {
	r := &Recorder{namespace: "talent"}
	for _, opt := range opts {
		opt(r)
	}
	if r.registerer == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		r.registerer = reg
		r.gatherer = reg
	}

	auto := promauto.With(r.registerer)

	r.generations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "report",
		Name:      "generations_total",
		Help:      "Report generations by outcome, framework and period.",
	}, []string{"outcome", "framework", "period"})

	r.generationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: "report",
		Name:      "generation_duration_seconds",
		Help:      "Time spent waiting on the generation service.",
		Buckets:   generationBuckets,
	}, []string{"outcome"})

	r.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status_code"})

	r.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	return r
}

// RecordGeneration counts one generation. Invalid requests never reach the
// service, so they are counted without a duration.
func (r *Recorder) RecordGeneration(outcome Outcome, framework, period string, d time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(string(outcome), framework, period).Inc()
	if outcome != OutcomeInvalid {
		r.generationDuration.WithLabelValues(string(outcome)).Observe(d.Seconds())
	}
}

func (r *Recorder) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
