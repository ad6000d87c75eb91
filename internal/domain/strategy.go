package domain

import "fmt"

// Strategy is the contestant's decision rule after the host reveal.
type Strategy uint8

const (
	// StrategyStay keeps the initial pick.
	StrategyStay Strategy = iota

	// StrategySwitch moves to the remaining unopened door.
	StrategySwitch
)

// Strategies lists both contestant strategies in report order:
// stay before switch.
var Strategies = [2]Strategy{StrategyStay, StrategySwitch}

// String returns the strategy name used in records and reports.
func (s Strategy) String() string {
	switch s {
	case StrategyStay:
		return "stay"
	case StrategySwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Stays reports whether the strategy keeps the initial pick.
func (s Strategy) Stays() bool { return s == StrategyStay }

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case StrategyStay, StrategySwitch:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown strategy value %d", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "stay":
		*s = StrategyStay
	case "switch":
		*s = StrategySwitch
	default:
		return fmt.Errorf("unknown strategy %q", text)
	}
	return nil
}

// FinalPick resolves the strategy's final door for the given reveal
// and initial pick.
func (s Strategy) FinalPick(opened, pick Door) (Door, error) {
	return ChangeDoor(s.Stays(), opened, pick)
}

// ChangeDoor resolves the contestant's final pick. Staying returns the
// pick unchanged; switching returns the unique door that is neither
// the opened door nor the pick. The opened door and pick must be
// distinct, valid positions.
func ChangeDoor(stay bool, opened, pick Door) (Door, error) {
	if !opened.Valid() {
		return 0, fmt.Errorf("change door: opened %d: %w", opened, ErrInvalidDoor)
	}
	if !pick.Valid() {
		return 0, fmt.Errorf("change door: pick %d: %w", pick, ErrInvalidDoor)
	}
	if opened == pick {
		return 0, fmt.Errorf("change door: position %d: %w", opened, ErrSameDoor)
	}

	if stay {
		return pick, nil
	}

	// Door positions 1..3 sum to 6, so two distinct doors determine
	// the third.
	const doorSum = NumDoors * (NumDoors + 1) / 2
	return doorSum - opened - pick, nil
}
