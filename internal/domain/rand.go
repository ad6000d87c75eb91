package domain

// Rand is the minimal random-source contract the game mechanics
// require. Implementations must be deterministic for a fixed seed so
// trials can be replayed; *math/rand/v2.Rand satisfies the interface.
//
// A Rand is not required to be safe for concurrent use. Parallel
// callers must give each goroutine its own stream.
type Rand interface {
	// IntN returns a uniformly distributed int in [0, n).
	// It panics if n <= 0, matching math/rand/v2 semantics.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}
