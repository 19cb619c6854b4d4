package onboarding

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeFailed   = "failed"
	outcomeDegraded = "degraded"
)

type Metrics struct {
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_steps_total",
			Help: "Onboarding step executions by outcome.",
		}, []string{"step", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboarding_step_duration_seconds",
			Help:    "Onboarding step latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"step"}),
	}
	reg.MustRegister(m.steps, m.duration)
	return m
}

func (m *Metrics) observe(step, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(step, outcome).Inc()
	m.duration.WithLabelValues(step).Observe(elapsed.Seconds())
}
