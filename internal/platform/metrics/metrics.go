package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes, one per error kind plus success.
const (
	OutcomeOK          = "ok"
	OutcomeRateLimited = "rate_limited"
	OutcomeAuth        = "auth_failure"
	OutcomeStatus      = "status_failure"
	OutcomeDecode      = "decode_failure"
	OutcomeTransport   = "transport_failure"
)

// Recorder owns a private Prometheus registry so tests and multiple servers never collide.
type Recorder struct {
	registry         *prometheus.Registry
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	rateLimitHits    *prometheus.CounterVec
	retries          *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = "football_hub"
	}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream provider calls by endpoint and outcome.",
		}, []string{"provider", "endpoint", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream provider call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "endpoint"}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_rate_limited_total",
			Help:      "Responses reporting an exhausted per-minute quota.",
		}, []string{"provider"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_retries_total",
			Help:      "Backoff retries issued by gateway operations.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Served HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Served HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		r.upstreamRequests,
		r.upstreamLatency,
		r.rateLimitHits,
		r.retries,
		r.httpRequests,
		r.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) ObserveUpstream(provider, endpoint, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(provider, endpoint, outcome).Inc()
	r.upstreamLatency.WithLabelValues(provider, endpoint).Observe(elapsed.Seconds())
	if outcome == OutcomeRateLimited {
		r.rateLimitHits.WithLabelValues(provider).Inc()
	}
}

func (r *Recorder) RecordRetry(operation string) {
	if r == nil {
		return
	}
	r.retries.WithLabelValues(operation).Inc()
}

func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
