// Package testutils provides deterministic random sources for tests.
package testutils

import (
	"math/rand/v2"

	"github.com/ahrav/go-monty/internal/domain"
)

// Compile-time verification that the fakes satisfy domain.Rand.
var (
	_ domain.Rand = (*ScriptedRand)(nil)
	_ domain.Rand = (*rand.Rand)(nil)
)

// ScriptedRand replays a fixed sequence of IntN results, letting tests
// force a specific game layout, pick, or reveal choice. Shuffle is a
// no-op so a scripted game keeps its initial label order.
type ScriptedRand struct {
	// Ints is the sequence of values IntN returns, consumed in order.
	Ints []int

	next int
}

// IntN returns the next scripted value. It panics when the script is
// exhausted, which in a test points at a missing scripted draw.
func (s *ScriptedRand) IntN(n int) int {
	if s.next >= len(s.Ints) {
		panic("testutils: ScriptedRand exhausted")
	}
	v := s.Ints[s.next]
	s.next++
	if v < 0 || v >= n {
		panic("testutils: scripted value out of range")
	}
	return v
}

// Shuffle leaves the element order untouched.
func (s *ScriptedRand) Shuffle(n int, swap func(i, j int)) {}

// SeededRand returns a deterministic PCG-backed source for the given
// seed, mirroring how the engine derives per-trial streams.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
