package domain

import (
	"errors"
	"fmt"
)

// Contract-violation errors returned by the game mechanics. These
// signal programming errors rather than recoverable runtime events;
// callers are expected to fail fast instead of retrying.
var (
	// ErrInvalidDoor indicates a door position outside {1, 2, 3}.
	ErrInvalidDoor = errors.New("door position must be between 1 and 3")

	// ErrSameDoor indicates the opened door and the contestant's pick
	// collapsed onto the same position, which the reveal rule forbids.
	ErrSameDoor = errors.New("opened door and pick must be distinct")
)

// MalformedGameError reports a game that does not hold exactly one
// prize. It should be unreachable for games built through NewGame, but
// every component that deduces a remaining door checks for it rather
// than picking arbitrarily.
type MalformedGameError struct {
	// Prizes is the number of prize labels observed.
	Prizes int
}

// Error implements the error interface for MalformedGameError.
func (e *MalformedGameError) Error() string {
	return fmt.Sprintf("malformed game: expected exactly 1 prize door, found %d", e.Prizes)
}
