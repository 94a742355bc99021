package tracker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/points"
	"github.com/mauv0809/bvtracker/internal/scoring"
)

var (
	ErrMissingDate    = errors.New("date is required")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
	ErrRankOutOfRange = errors.New("rank must be between 1 and 12")
	ErrTooManySets    = errors.New("a match has at most three sets")
	ErrNegativeScore  = errors.New("set scores cannot be negative")
	ErrUndecided      = errors.New("set scores do not decide a best of three match")
)

// ValidationError lists every problem found in a MatchInput.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return "invalid match: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

// NewMatch validates in and builds the record to store. Points are fixed
// here and never recomputed.
func NewMatch(in MatchInput, newID func() string) (ledger.MatchRecord, error) {
	var problems []error

	var date ledger.Date
	if strings.TrimSpace(in.Date) == "" {
		problems = append(problems, ErrMissingDate)
	} else if d, err := ledger.ParseDate(in.Date); err != nil {
		problems = append(problems, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date))
	} else {
		date = d
	}

	ranks := []struct {
		field string
		value int
	}{
		{"myClass", in.MyClass},
		{"partnerClass", in.PartnerClass},
		{"opp1Class", in.Opp1Class},
		{"opp2Class", in.Opp2Class},
	}
	for _, r := range ranks {
		if !points.Rank(r.value).Valid() {
			problems = append(problems, fmt.Errorf("%w: %s is %d", ErrRankOutOfRange, r.field, r.value))
		}
	}

	for i, set := range in.Sets {
		if (set[0] != nil && *set[0] < 0) || (set[1] != nil && *set[1] < 0) {
			problems = append(problems, fmt.Errorf("%w: set %d", ErrNegativeScore, i+1))
		}
	}

	outcome := scoring.ResolveOutcome(in.Sets)
	if len(in.Sets) > 3 {
		problems = append(problems, ErrTooManySets)
	} else if outcome == scoring.OutcomeUndecided {
		problems = append(problems, ErrUndecided)
	}

	if len(problems) > 0 {
		return ledger.MatchRecord{}, &ValidationError{Problems: problems}
	}

	isWin := outcome == scoring.OutcomeWin
	pts := 0
	if isWin {
		pts = scoring.WinPoints(points.Rank(in.Opp1Class), points.Rank(in.Opp2Class))
	}

	score := make([]ledger.SetScore, 0, len(in.Sets))
	for _, s := range in.Sets {
		if s.Complete() {
			score = append(score, ledger.SetScore{*s[0], *s[1]})
		}
	}

	return ledger.MatchRecord{
		ID:           newID(),
		Date:         date,
		MyClass:      in.MyClass,
		PartnerClass: in.PartnerClass,
		Opp1Class:    in.Opp1Class,
		Opp2Class:    in.Opp2Class,
		IsWin:        isWin,
		Points:       pts,
		Score:        score,
	}, nil
}
