package timer

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "tickdown"

// Metrics counts timer activity. One Metrics value may be shared by many
// timers through Options.Metrics.
type Metrics struct {
	// all metrics fields must be exported
	// to be able to return them by Collectors()
	// using reflection
	Ticks            prometheus.Counter
	DriftCorrections prometheus.Counter
	Laps             prometheus.Counter
	Finished         prometheus.Counter
	Interrupted      prometheus.Counter
}

// NewMetrics creates an unregistered set of timer counters.
func NewMetrics() *Metrics {
	subsystem := "timer"

	return &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "ticks_total",
			Help:      "Number of ticks processed.",
		}),
		DriftCorrections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "drift_corrections_total",
			Help:      "Number of ticks that recomputed elapsed time from the clock.",
		}),
		Laps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "laps_total",
			Help:      "Number of laps recorded.",
		}),
		Finished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "finished_total",
			Help:      "Number of runs that reached the deadline.",
		}),
		Interrupted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "interrupted_total",
			Help:      "Number of runs ended by stop or reset.",
		}),
	}
}

// Collectors returns every counter for registration.
func (m *Metrics) Collectors() (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(m))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}
