package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-monty/internal/domain"
	"github.com/ahrav/go-monty/internal/ports"
)

// The global tracer provider defaults to a no-op implementation, so
// these tests exercise the observer's control flow without an
// exporter.

func TestRunObserver_Lifecycle(t *testing.T) {
	o := NewRunObserver()
	var _ ports.RunObserver = o

	ctx := o.RunStarted(context.Background(), 100, 42)
	require.NotNil(t, ctx)

	set := domain.ResultSet{
		{Strategy: domain.StrategyStay, Outcome: domain.OutcomeLose},
		{Strategy: domain.StrategySwitch, Outcome: domain.OutcomeWin},
	}

	assert.NotPanics(t, func() {
		o.RunCompleted(ctx, set, 5*time.Millisecond, nil)
	})
}

func TestRunObserver_CompletedWithError(t *testing.T) {
	o := NewRunObserver()

	ctx := o.RunStarted(context.Background(), 10, 1)

	assert.NotPanics(t, func() {
		o.RunCompleted(ctx, nil, time.Millisecond, errors.New("run failed"))
	})
}

// RunCompleted must tolerate a context that never passed through
// RunStarted; it then operates on a no-op span.
func TestRunObserver_CompletedWithoutStart(t *testing.T) {
	o := NewRunObserver()

	assert.NotPanics(t, func() {
		o.RunCompleted(context.Background(), domain.ResultSet{}, time.Millisecond, nil)
	})
}
