package application

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ahrav/go-monty/internal/domain"
)

// StrategySummary aggregates one strategy's outcomes across a run.
type StrategySummary struct {
	// Strategy is the decision rule this row covers.
	Strategy domain.Strategy

	// Wins and Losses count the strategy's outcomes.
	Wins   int
	Losses int

	// WinRate is Wins / (Wins + Losses), rounded to two decimal
	// places. Zero for an empty row.
	WinRate float64
}

// Summary is the row-normalized frequency table for a completed run:
// one row per strategy, stay before switch.
type Summary struct {
	// Trials is the number of paired trials the summary covers.
	Trials int

	// Strategies holds the per-strategy rows in report order.
	Strategies [2]StrategySummary
}

// Summarize reduces a result set into per-strategy win/loss counts and
// win rates. It is an explicit single-pass reduction over the records
// and never mutates or filters the set.
func Summarize(set domain.ResultSet) Summary {
	s := Summary{Trials: set.Trials()}
	for i, strategy := range domain.Strategies {
		s.Strategies[i].Strategy = strategy
	}

	for _, record := range set {
		row := &s.Strategies[0]
		if record.Strategy == domain.StrategySwitch {
			row = &s.Strategies[1]
		}
		if record.Outcome == domain.OutcomeWin {
			row.Wins++
		} else {
			row.Losses++
		}
	}

	for i := range s.Strategies {
		row := &s.Strategies[i]
		if total := row.Wins + row.Losses; total > 0 {
			row.WinRate = math.Round(float64(row.Wins)/float64(total)*100) / 100
		}
	}

	return s
}

// WriteTable renders the summary as a console frequency table.
func (s Summary) WriteTable(w io.Writer) {
	fmt.Fprintf(w, "%-10s %8s %8s %10s\n", "strategy", "wins", "losses", "win_rate")
	for _, row := range s.Strategies {
		fmt.Fprintf(w, "%-10s %8d %8d %10.2f\n", row.Strategy, row.Wins, row.Losses, row.WinRate)
	}
}

// String returns the rendered frequency table.
func (s Summary) String() string {
	var b strings.Builder
	s.WriteTable(&b)
	return b.String()
}
