package scoring

// Outcome is the result of a best-of-three match as far as it has been entered.
type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "WIN"
	case OutcomeLoss:
		return "LOSS"
	default:
		return "UNDECIDED"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// SetEntry is a set score as typed in: [ours, theirs], either side may be missing.
type SetEntry [2]*int

// Set builds a fully entered SetEntry.
func Set(us, them int) SetEntry {
	return SetEntry{&us, &them}
}

// Decided reports whether both sides are present and differ.
func (s SetEntry) Decided() bool {
	return s[0] != nil && s[1] != nil && *s[0] != *s[1]
}

// Complete reports whether both sides are present.
func (s SetEntry) Complete() bool {
	return s[0] != nil && s[1] != nil
}

// Average is the rolling average over the recent-match window.
type Average struct {
	Average     int `json:"avg"`
	TotalPoints int `json:"totalPoints"`
	WindowCount int `json:"windowCount"`
}

const (
	// WindowSize is the number of most recent matches counted.
	WindowSize = 20
	// MinDivisor keeps sparse histories from inflating the average.
	MinDivisor = 7
	// TargetAverage is the average needed for promotion. Display only.
	TargetAverage = 457
)
