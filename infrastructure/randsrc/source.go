// Package randsrc provides the seeded random streams the simulation
// engine draws from: crypto-quality seed generation for ad hoc runs
// and deterministic per-trial PCG streams for reproducible ones.
package randsrc

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/ahrav/go-monty/internal/domain"
)

// Compile-time verification that a stream satisfies domain.Rand.
var _ domain.Rand = (*rand.Rand)(nil)

// NewSeed generates a random run seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Stream returns the random stream for one trial of a run. Streams are
// keyed by (seed, trial), so a run replays identically for a fixed
// seed no matter how trials are scheduled across workers, and parallel
// trials never share generator state.
func Stream(seed int64, trial uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), trial))
}
