// Package metrics provides the Prometheus implementation of the
// engine's simulation metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-monty/internal/domain"
	"github.com/ahrav/go-monty/internal/ports"
)

// Compile-time verification that Simulation implements SimulationMetrics.
var _ ports.SimulationMetrics = (*Simulation)(nil)

// Simulation implements ports.SimulationMetrics using Prometheus.
// It tracks completed trials, outcomes partitioned by strategy, and
// run durations. All methods are safe for concurrent use.
type Simulation struct {
	trialsTotal   prometheus.Counter
	outcomesTotal *prometheus.CounterVec
	runDuration   prometheus.Histogram
}

// NewSimulation registers the simulation metrics on reg and returns
// the collector. Pass prometheus.DefaultRegisterer for the process
// registry, or a fresh registry in tests to avoid duplicate
// registration panics.
func NewSimulation(reg prometheus.Registerer) *Simulation {
	factory := promauto.With(reg)

	return &Simulation{
		trialsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "montysim_trials_total",
			Help: "Total number of completed Monty Hall trials.",
		}),
		outcomesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "montysim_outcomes_total",
			Help: "Trial outcomes partitioned by strategy and result.",
		}, []string{"strategy", "outcome"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "montysim_run_duration_seconds",
			Help:    "Wall-clock duration of complete simulation runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveTrial implements the SimulationMetrics interface by counting
// the trial and both of its strategy outcomes.
func (m *Simulation) ObserveTrial(pair domain.TrialPair) {
	m.trialsTotal.Inc()
	for _, record := range pair.Records() {
		m.outcomesTotal.WithLabelValues(
			record.Strategy.String(),
			record.Outcome.String(),
		).Inc()
	}
}

// ObserveRun implements the SimulationMetrics interface by recording
// the run duration.
func (m *Simulation) ObserveRun(trials int, elapsed time.Duration) {
	m.runDuration.Observe(elapsed.Seconds())
}
