package registry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the registry's instrumentation counters. They are
// created per Registry so tests and multiple registries never collide
// on a shared default prometheus registerer.
type metrics struct {
	Dispatched *prometheus.CounterVec
	Filtered   prometheus.Counter
	SinkErrors *prometheus.CounterVec
}

func newMetrics() metrics {
	subsystem := "registry"

	return metrics{
		Dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "radlog",
			Subsystem: subsystem,
			Name:      "dispatched_total",
			Help:      "Number of log entries delivered to at least one backend.",
		}, []string{"level"}),
		Filtered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "radlog",
			Subsystem: subsystem,
			Name:      "filtered_total",
			Help:      "Number of log entries dropped by the global or backend thresholds.",
		}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "radlog",
			Subsystem: subsystem,
			Name:      "sink_errors_total",
			Help:      "Number of sink invocations that returned an error or panicked.",
		}, []string{"backend"}),
	}
}

// Metrics returns the registry's collectors for registration with a
// prometheus registerer.
func (r *Registry) Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		r.metrics.Dispatched,
		r.metrics.Filtered,
		r.metrics.SinkErrors,
	}
}
