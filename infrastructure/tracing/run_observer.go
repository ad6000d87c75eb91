// Package tracing provides the OpenTelemetry implementation of the
// engine's run observer.
package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-monty/internal/application"
	"github.com/ahrav/go-monty/internal/domain"
	"github.com/ahrav/go-monty/internal/ports"
)

// Compile-time verification that RunObserver implements ports.RunObserver.
var _ ports.RunObserver = (*RunObserver)(nil)

// tracerName identifies this instrumentation scope.
const tracerName = "github.com/ahrav/go-monty/infrastructure/tracing"

// RunObserver implements observability for simulation runs using
// OpenTelemetry tracing. One span covers each run, carrying the run
// parameters as attributes and the per-strategy win rates on
// completion. The span travels through the run context, so a single
// observer may serve concurrent runs.
type RunObserver struct {
	tracer trace.Tracer
}

// NewRunObserver creates a new OpenTelemetry run observer.
func NewRunObserver() *RunObserver {
	return &RunObserver{tracer: otel.Tracer(tracerName)}
}

// RunStarted implements the RunObserver interface. It opens the run
// span and records the simulation parameters.
func (o *RunObserver) RunStarted(ctx context.Context, trials int, seed int64) context.Context {
	ctx, span := o.tracer.Start(ctx, "Engine.PlayNGames")
	span.SetAttributes(
		attribute.Int("simulation.trials", trials),
		attribute.Int64("simulation.seed", seed),
	)
	return ctx
}

// RunCompleted implements the RunObserver interface. It finalizes the
// run span with the elapsed time, the per-strategy win rates, and the
// error status if the run failed.
func (o *RunObserver) RunCompleted(
	ctx context.Context,
	set domain.ResultSet,
	elapsed time.Duration,
	err error,
) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(attribute.Int64("simulation.elapsed_ms", elapsed.Milliseconds()))

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return
	}

	summary := application.Summarize(set)
	for _, row := range summary.Strategies {
		span.SetAttributes(attribute.Float64(
			"simulation.win_rate."+row.Strategy.String(), row.WinRate))
	}
	span.SetStatus(codes.Ok, "simulation completed")
}
