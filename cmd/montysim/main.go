// Command montysim runs a Monty Hall Monte Carlo simulation and
// prints the per-strategy win-rate table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ahrav/go-monty/infrastructure/metrics"
	"github.com/ahrav/go-monty/infrastructure/tracing"
	"github.com/ahrav/go-monty/internal/application"
)

func main() {
	var (
		trials  = flag.Int("trials", application.DefaultTrials, "Number of paired trials to play")
		seed    = flag.Int64("seed", 0, "Run seed (0 derives one from crypto/rand)")
		workers = flag.Int("workers", 1, "Maximum number of concurrent trials")
	)
	flag.Parse()

	if *trials <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "Error: trials and workers must be positive")
		os.Exit(1)
	}

	cfg := application.SimulationConfig{
		Trials:  *trials,
		Seed:    *seed,
		Workers: *workers,
	}

	engine, err := application.NewEngine(cfg,
		application.WithMetrics(metrics.NewSimulation(prometheus.DefaultRegisterer)),
		application.WithRunObserver(tracing.NewRunObserver()),
		application.WithSummaryWriter(os.Stdout),
	)
	if err != nil {
		log.Fatalf("Failed to configure simulation: %v", err)
	}

	fmt.Printf("Playing %d Monty Hall trials (seed %d, %d workers)\n\n",
		*trials, engine.Seed(), *workers)

	if _, err := engine.Run(context.Background()); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}
