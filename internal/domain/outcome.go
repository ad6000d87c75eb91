package domain

import "fmt"

// Outcome classifies a final pick against the game's hidden
// assignment.
type Outcome uint8

const (
	// OutcomeLose means the final pick hid a goat.
	OutcomeLose Outcome = iota

	// OutcomeWin means the final pick hid the prize.
	OutcomeWin
)

// String returns the outcome name used in records and reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeLose:
		return "LOSE"
	case OutcomeWin:
		return "WIN"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	switch o {
	case OutcomeLose, OutcomeWin:
		return []byte(o.String()), nil
	default:
		return nil, fmt.Errorf("unknown outcome value %d", o)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "LOSE":
		*o = OutcomeLose
	case "WIN":
		*o = OutcomeWin
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}

// DetermineWinner judges the final pick against the game: WIN if the
// pick hides the prize, LOSE otherwise. It is a pure function of its
// inputs; identical inputs always yield identical outcomes. A
// malformed game fails loudly rather than producing an undefined
// outcome.
func DetermineWinner(finalPick Door, game Game) (Outcome, error) {
	if !finalPick.Valid() {
		return OutcomeLose, fmt.Errorf("determine winner: final pick %d: %w", finalPick, ErrInvalidDoor)
	}
	if err := game.Validate(); err != nil {
		return OutcomeLose, fmt.Errorf("determine winner: %w", err)
	}

	if game.Label(finalPick) == LabelPrize {
		return OutcomeWin, nil
	}
	return OutcomeLose, nil
}
