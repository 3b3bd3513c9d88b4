// Package metrics records check outcomes as Prometheus series.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Recorder holds the collectors for check outcomes.
type Recorder struct {
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cache    *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typecheck_checks_total",
				Help: "Total number of checks by shape and result",
			},
			[]string{"shape", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "typecheck_check_duration_seconds",
				Help:    "Duration of decoding and checking a payload",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"shape"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typecheck_cache_lookups_total",
				Help: "Verdict cache lookups by outcome (hit, miss, error)",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(r.checks, r.duration, r.cache)
	return r
}

// ObserveCheck records one check of shape.
func (r *Recorder) ObserveCheck(shape, result string, took time.Duration) {
	if r == nil {
		return
	}
	r.checks.WithLabelValues(shape, result).Inc()
	r.duration.WithLabelValues(shape).Observe(took.Seconds())
}

// ObserveCache records one cache lookup.
func (r *Recorder) ObserveCache(outcome string) {
	if r == nil {
		return
	}
	r.cache.WithLabelValues(outcome).Inc()
}

// Result maps a verdict to its label value.
func Result(valid bool) string {
	if valid {
		return ResultValid
	}
	return ResultInvalid
}
