package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the gateway request collectors on reg.
// A nil reg uses the default registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "passimpay",
			Name:      "requests_total",
			Help:      "Gateway requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "passimpay",
			Name:      "request_duration_seconds",
			Help:      "Gateway request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	reg.MustRegister(requests, latency)

	return &PrometheusRecorder{
		requests: requests,
		latency:  latency,
	}
}

func (p *PrometheusRecorder) IncRequest(endpoint string, outcome string) {
	p.requests.With(prometheus.Labels{
		"endpoint": endpoint,
		"outcome":  outcome,
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(endpoint string, d time.Duration) {
	p.latency.With(prometheus.Labels{
		"endpoint": endpoint,
	}).Observe(d.Seconds())
}
