// Package application wires the domain's game mechanics into the
// repeated-trial simulation engine and its win-rate reporting.
package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultTrials is the number of trials a run performs when the caller
// does not say otherwise.
const DefaultTrials = 100

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// SimulationConfig controls a simulation run. Configuration is
// validated when the engine is constructed and immutable afterwards.
type SimulationConfig struct {
	// Trials is the number of paired trials to play. Each trial
	// produces one stay record and one switch record.
	Trials int `validate:"required,min=1"`

	// Seed selects the deterministic random stream family for the run.
	// Zero means derive a fresh seed from crypto/rand at construction.
	Seed int64

	// Workers bounds how many trials execute concurrently.
	// One means fully sequential execution.
	Workers int `validate:"required,min=1"`
}

// DefaultSimulationConfig returns a configuration with the standard
// trial count and sequential execution.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Trials:  DefaultTrials,
		Workers: 1,
	}
}

// Validate checks the configuration against its struct constraints.
func (c SimulationConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("simulation config validation failed: %w", err)
	}
	return nil
}
