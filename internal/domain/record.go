package domain

// TrialRecord pairs a strategy with the outcome it produced in one
// trial.
type TrialRecord struct {
	// Strategy is the decision rule the record was judged under.
	Strategy Strategy `json:"strategy"`

	// Outcome is the result of judging that strategy's final pick.
	Outcome Outcome `json:"outcome"`
}

// TrialPair holds both records produced by one trial. Both strategies
// are resolved against the same game and initial pick, so the pair
// compares them on identical hidden state (paired sampling) rather
// than only in aggregate.
type TrialPair struct {
	// Stay is the record for keeping the initial pick.
	Stay TrialRecord `json:"stay"`

	// Switch is the record for moving to the remaining door.
	Switch TrialRecord `json:"switch"`
}

// Records returns the pair in report order: stay first, then switch.
func (p TrialPair) Records() [2]TrialRecord {
	return [2]TrialRecord{p.Stay, p.Switch}
}

// ResultSet is the ordered collection of every trial record produced
// by a run: 2n records for n trials, stay before switch within each
// trial, trial order preserved.
type ResultSet []TrialRecord

// Trials returns the number of trials the set covers.
func (rs ResultSet) Trials() int { return len(rs) / 2 }
