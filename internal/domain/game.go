// Package domain contains the Monty Hall game-state machine: the door
// setup, the contestant's selection, the constrained host reveal,
// strategy resolution, and outcome judgment. All randomness is drawn
// from an injected Rand so games are replayable under a fixed seed.
package domain

// NumDoors is the number of doors in a game.
const NumDoors = 3

// Door identifies one of the three doors by position.
// Valid positions are 1 through NumDoors.
type Door int

// Valid reports whether the door position is within {1, 2, 3}.
func (d Door) Valid() bool { return d >= 1 && d <= NumDoors }

// Label marks what a door hides.
type Label uint8

const (
	// LabelGoat marks a non-prize door.
	LabelGoat Label = iota

	// LabelPrize marks the single prize door.
	LabelPrize
)

// String returns the human-readable name of the label.
func (l Label) String() string {
	switch l {
	case LabelGoat:
		return "goat"
	case LabelPrize:
		return "prize"
	default:
		return "unknown"
	}
}

// Game is one round's hidden door assignment: exactly one prize behind
// one of three doors. A Game is immutable once created and is discarded
// at the end of its trial.
type Game struct {
	labels [NumDoors]Label
}

// NewGame deals a fresh game by shuffling the multiset
// {prize, goat, goat} across the three doors. Each of the three prize
// positions is equally likely.
func NewGame(rng Rand) Game {
	labels := [NumDoors]Label{LabelPrize, LabelGoat, LabelGoat}
	rng.Shuffle(NumDoors, func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})
	return Game{labels: labels}
}

// NewGameFromLabels builds a game from an explicit door assignment.
// It returns a MalformedGameError unless exactly one label is
// LabelPrize. Intended for fixed scenarios and tests.
func NewGameFromLabels(labels [NumDoors]Label) (Game, error) {
	g := Game{labels: labels}
	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

// Label returns the label behind the given door.
// The door must be valid; callers validate positions at the API
// boundary before indexing into the game.
func (g Game) Label(d Door) Label { return g.labels[d-1] }

// Prize returns the door hiding the prize, or 0 for a game with no
// prize door.
func (g Game) Prize() Door {
	for i, l := range g.labels {
		if l == LabelPrize {
			return Door(i + 1)
		}
	}
	return 0
}

// Validate checks the structural invariant: exactly one prize among
// the three doors. A zero-value Game fails validation.
func (g Game) Validate() error {
	prizes := 0
	for _, l := range g.labels {
		if l == LabelPrize {
			prizes++
		}
	}
	if prizes != 1 {
		return &MalformedGameError{Prizes: prizes}
	}
	return nil
}

// SelectDoor returns the contestant's initial pick, uniform over the
// three doors and independent of the game's own randomness.
func SelectDoor(rng Rand) Door {
	return Door(rng.IntN(NumDoors) + 1)
}
