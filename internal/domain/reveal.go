package domain

import "fmt"

// OpenGoatDoor applies the host's reveal rule: open a door that hides
// a goat and is not the contestant's pick, chosen uniformly among the
// candidates. When the pick hides the prize two candidates exist (1/2
// each); when the pick hides a goat the single remaining goat door is
// forced. Either way the returned door is never the prize and never
// the pick.
func OpenGoatDoor(rng Rand, game Game, pick Door) (Door, error) {
	if !pick.Valid() {
		return 0, fmt.Errorf("open goat door: pick %d: %w", pick, ErrInvalidDoor)
	}
	if err := game.Validate(); err != nil {
		return 0, fmt.Errorf("open goat door: %w", err)
	}

	candidates := make([]Door, 0, NumDoors-1)
	for d := Door(1); d <= NumDoors; d++ {
		if d != pick && game.Label(d) != LabelPrize {
			candidates = append(candidates, d)
		}
	}

	// A validated game always leaves at least one goat door besides the
	// pick. Fail loudly rather than pick arbitrarily if that invariant
	// ever breaks.
	if len(candidates) == 0 {
		return 0, fmt.Errorf("open goat door: no revealable door: %w",
			&MalformedGameError{Prizes: NumDoors})
	}

	return candidates[rng.IntN(len(candidates))], nil
}
