// Package metrics records facade activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics on a private registry.
type Recorder struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_facade_calls_total",
				Help: "Number of facade calls by capability, operation, generation and outcome.",
			},
			[]string{"capability", "operation", "generation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfer_facade_call_duration_seconds",
				Help:    "Time spent in facade calls, including the delegated backend.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"capability", "operation"},
		),
	}
	r.registry.MustRegister(r.calls, r.duration)
	return r
}

// ObserveCall implements ports.Metrics.
func (r *Recorder) ObserveCall(obs ports.CallObservation) {
	generation := obs.Generation.String()
	if generation == "" {
		generation = "none"
	}
	r.calls.WithLabelValues(string(obs.Capability), obs.Operation, generation, obs.Outcome).Inc()
	r.duration.WithLabelValues(string(obs.Capability), obs.Operation).Observe(obs.Duration.Seconds())
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsExportFailed.Error()), "path", path)
	}
	return nil
}
