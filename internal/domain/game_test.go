package domain

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of IntN results and leaves
// Shuffle untouched, letting tests force a specific layout or choice.
type scriptedRand struct {
	ints []int
	next int
}

func (s *scriptedRand) IntN(n int) int {
	if s.next >= len(s.ints) {
		panic("scriptedRand exhausted")
	}
	v := s.ints[s.next]
	s.next++
	if v < 0 || v >= n {
		panic("scripted value out of range")
	}
	return v
}

func (s *scriptedRand) Shuffle(n int, swap func(i, j int)) {}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestDoor_Valid(t *testing.T) {
	tests := []struct {
		door Door
		want bool
	}{
		{door: 0, want: false},
		{door: 1, want: true},
		{door: 2, want: true},
		{door: 3, want: true},
		{door: 4, want: false},
		{door: -1, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.door.Valid(), "Door(%d).Valid()", tt.door)
	}
}

func TestNewGame_ExactlyOnePrize(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		game := NewGame(seededRand(seed))

		require.NoError(t, game.Validate(), "seed %d produced a malformed game", seed)

		prize := game.Prize()
		require.True(t, prize.Valid(), "seed %d: prize door out of range", seed)
		assert.Equal(t, LabelPrize, game.Label(prize))
	}
}

// TestNewGame_PrizeUniform checks that the shuffled prize position is
// close to uniform across independent seeded games. The run is fully
// deterministic, so the tolerance only absorbs sampling noise of the
// fixed seed family.
func TestNewGame_PrizeUniform(t *testing.T) {
	const games = 30000

	counts := map[Door]int{}
	for seed := uint64(0); seed < games; seed++ {
		counts[NewGame(seededRand(seed)).Prize()]++
	}

	for d := Door(1); d <= NumDoors; d++ {
		proportion := float64(counts[d]) / games
		assert.InDelta(t, 1.0/3.0, proportion, 0.02,
			"prize behind door %d in %.3f of games", d, proportion)
	}
}

func TestNewGameFromLabels(t *testing.T) {
	tests := []struct {
		name       string
		labels     [NumDoors]Label
		wantPrize  Door
		wantPrizes int
		wantErr    bool
	}{
		{
			name:      "prize on first door",
			labels:    [NumDoors]Label{LabelPrize, LabelGoat, LabelGoat},
			wantPrize: 1,
		},
		{
			name:      "prize on last door",
			labels:    [NumDoors]Label{LabelGoat, LabelGoat, LabelPrize},
			wantPrize: 3,
		},
		{
			name:       "no prize",
			labels:     [NumDoors]Label{LabelGoat, LabelGoat, LabelGoat},
			wantErr:    true,
			wantPrizes: 0,
		},
		{
			name:       "two prizes",
			labels:     [NumDoors]Label{LabelPrize, LabelPrize, LabelGoat},
			wantErr:    true,
			wantPrizes: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := NewGameFromLabels(tt.labels)

			if tt.wantErr {
				require.Error(t, err)

				var malformed *MalformedGameError
				require.ErrorAs(t, err, &malformed)
				assert.Equal(t, tt.wantPrizes, malformed.Prizes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrize, game.Prize())
		})
	}
}

func TestSelectDoor_RangeAndCoverage(t *testing.T) {
	rng := seededRand(7)

	seen := map[Door]bool{}
	for i := 0; i < 200; i++ {
		d := SelectDoor(rng)
		require.True(t, d.Valid(), "selected door %d out of range", d)
		seen[d] = true
	}

	// 200 uniform draws cover all three doors for any sane source.
	assert.Len(t, seen, NumDoors)
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "goat", LabelGoat.String())
	assert.Equal(t, "prize", LabelPrize.String())
	assert.Equal(t, "unknown", Label(9).String())
}

func TestMalformedGameError(t *testing.T) {
	err := &MalformedGameError{Prizes: 2}
	assert.Equal(t, "malformed game: expected exactly 1 prize door, found 2", err.Error())

	var target *MalformedGameError
	assert.True(t, errors.As(error(err), &target))
}
