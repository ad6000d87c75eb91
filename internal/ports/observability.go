// Package ports defines the interfaces between the simulation engine
// and its infrastructure adapters. These interfaces enable dependency
// inversion and keep the engine testable without Prometheus or
// OpenTelemetry wiring.
package ports

import (
	"context"
	"time"

	"github.com/ahrav/go-monty/internal/domain"
)

// SimulationMetrics receives per-trial and per-run measurements from
// the engine. Implementations must be safe for concurrent use; a
// parallel run reports trials from multiple goroutines.
type SimulationMetrics interface {
	// ObserveTrial records both outcomes of one completed trial.
	ObserveTrial(pair domain.TrialPair)

	// ObserveRun records a completed run of the given size and
	// duration. It is called once per run, after the last trial.
	ObserveRun(trials int, elapsed time.Duration)
}

// RunObserver traces the lifecycle of a simulation run.
// Implementations typically open a span in RunStarted and close it in
// RunCompleted.
type RunObserver interface {
	// RunStarted is called before the first trial executes. The
	// returned context flows through the run and back into
	// RunCompleted, allowing the observer to attach span state.
	RunStarted(ctx context.Context, trials int, seed int64) context.Context

	// RunCompleted is called exactly once per run, whether the run
	// finished or failed. On failure set is nil and err carries the
	// cause.
	RunCompleted(ctx context.Context, set domain.ResultSet, elapsed time.Duration, err error)
}
