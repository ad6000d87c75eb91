package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-monty/infrastructure/randsrc"
	"github.com/ahrav/go-monty/internal/domain"
	"github.com/ahrav/go-monty/internal/ports"
)

// ErrInvalidTrials indicates a non-positive trial count was requested.
var ErrInvalidTrials = errors.New("trial count must be positive")

// StreamFactory derives the random stream for one trial of a run.
// The default factory returns independent PCG streams keyed by
// (seed, trial); tests substitute scripted sources.
type StreamFactory func(seed int64, trial uint64) domain.Rand

// Engine runs complete Monty Hall trials and aggregates their
// outcomes. Every trial evaluates both strategies against the same
// game and initial pick, so the stay/switch comparison is paired
// within each trial rather than only across the run.
//
// An Engine is safe for concurrent use; each trial draws from its own
// random stream and shares no mutable state with other trials.
type Engine struct {
	cfg      SimulationConfig
	streams  StreamFactory
	metrics  ports.SimulationMetrics
	observer ports.RunObserver
	summary  io.Writer
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithMetrics wires a metrics collector that receives every trial and
// completed run.
func WithMetrics(m ports.SimulationMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithRunObserver wires an observer that traces run lifecycles.
func WithRunObserver(o ports.RunObserver) Option {
	return func(e *Engine) { e.observer = o }
}

// WithSummaryWriter wires the side channel the per-strategy win-rate
// table is written to after each successful run. The returned result
// set is never mutated or filtered by the summary.
func WithSummaryWriter(w io.Writer) Option {
	return func(e *Engine) { e.summary = w }
}

// WithStreamFactory replaces the per-trial random stream derivation.
func WithStreamFactory(f StreamFactory) Option {
	return func(e *Engine) { e.streams = f }
}

// NewEngine validates the configuration and builds an engine. A zero
// seed is replaced with crypto-derived seed material so every run has
// a concrete, reportable seed.
func NewEngine(cfg SimulationConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		streams: func(seed int64, trial uint64) domain.Rand {
			return randsrc.Stream(seed, trial)
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cfg.Seed == 0 {
		seed, err := randsrc.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("derive run seed: %w", err)
		}
		e.cfg.Seed = seed
	}

	return e, nil
}

// Seed returns the concrete seed the engine runs under.
func (e *Engine) Seed() int64 { return e.cfg.Seed }

// PlayGame plays one complete trial with the given random source: deal
// a game, select the initial pick, open a goat door, then resolve and
// judge both strategies against that same hidden state. The stay
// record precedes the switch record in the returned pair.
func (e *Engine) PlayGame(rng domain.Rand) (domain.TrialPair, error) {
	game := domain.NewGame(rng)
	pick := domain.SelectDoor(rng)

	opened, err := domain.OpenGoatDoor(rng, game, pick)
	if err != nil {
		return domain.TrialPair{}, fmt.Errorf("play game: %w", err)
	}

	var pair domain.TrialPair
	for _, strategy := range domain.Strategies {
		final, err := strategy.FinalPick(opened, pick)
		if err != nil {
			return domain.TrialPair{}, fmt.Errorf("play game: resolve %s: %w", strategy, err)
		}

		outcome, err := domain.DetermineWinner(final, game)
		if err != nil {
			return domain.TrialPair{}, fmt.Errorf("play game: judge %s: %w", strategy, err)
		}

		record := domain.TrialRecord{Strategy: strategy, Outcome: outcome}
		if strategy.Stays() {
			pair.Stay = record
		} else {
			pair.Switch = record
		}
	}

	return pair, nil
}

// Run plays the configured number of trials.
func (e *Engine) Run(ctx context.Context) (domain.ResultSet, error) {
	return e.PlayNGames(ctx, e.cfg.Trials)
}

// PlayNGames plays exactly n trials and returns all 2n records in
// trial order. Trials execute concurrently when the engine is
// configured with more than one worker; because each trial draws from
// its own (seed, trial) stream and records land in a slice indexed by
// trial, the result is identical for a fixed seed regardless of
// worker count.
//
// After a successful run the win-rate summary is written to the
// configured summary writer. A non-positive n fails with
// ErrInvalidTrials.
func (e *Engine) PlayNGames(ctx context.Context, n int) (domain.ResultSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("play %d games: %w", n, ErrInvalidTrials)
	}

	if e.observer != nil {
		ctx = e.observer.RunStarted(ctx, n, e.cfg.Seed)
	}

	start := time.Now()
	set, err := e.runTrials(ctx, n)
	elapsed := time.Since(start)

	if err == nil && e.metrics != nil {
		e.metrics.ObserveRun(n, elapsed)
	}
	if e.observer != nil {
		e.observer.RunCompleted(ctx, set, elapsed, err)
	}
	if err != nil {
		return nil, err
	}

	if e.summary != nil {
		Summarize(set).WriteTable(e.summary)
	}

	return set, nil
}

// runTrials executes the trial loop. Results are written into a
// pre-sized slice indexed by trial number so record order never
// depends on goroutine scheduling.
func (e *Engine) runTrials(ctx context.Context, n int) (domain.ResultSet, error) {
	pairs := make([]domain.TrialPair, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			pair, err := e.PlayGame(e.streams(e.cfg.Seed, uint64(i)))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			pairs[i] = pair

			if e.metrics != nil {
				e.metrics.ObserveTrial(pair)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(domain.ResultSet, 0, 2*n)
	for _, pair := range pairs {
		records := pair.Records()
		set = append(set, records[0], records[1])
	}
	return set, nil
}
