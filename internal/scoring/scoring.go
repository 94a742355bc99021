package scoring

import (
	"math"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/points"
)

// WinPoints is the value of beating a pair of opponents: the mean of their
// table values, rounded half away from zero. Returns 0 if either rank is
// outside the table; callers validate ranks first.
func WinPoints(r1, r2 points.Rank) int {
	p1, ok1 := points.For(r1)
	p2, ok2 := points.For(r2)
	if !ok1 || !ok2 {
		return 0
	}
	return int(math.Round(float64(p1+p2) / 2))
}

// ResolveOutcome decides a best-of-three match. Sets missing a side or
// ending level are not counted.
func ResolveOutcome(sets []SetEntry) Outcome {
	var usWins, themWins int
	for _, s := range sets {
		if !s.Decided() {
			continue
		}
		if *s[0] > *s[1] {
			usWins++
		} else {
			themWins++
		}
	}
	switch {
	case usWins >= 2:
		return OutcomeWin
	case themWins >= 2:
		return OutcomeLoss
	default:
		return OutcomeUndecided
	}
}

// RollingAverage sums the points of the WindowSize newest matches and
// floor-divides by the window count, or by MinDivisor when fewer matches
// exist. matches is not reordered.
func RollingAverage(matches []ledger.MatchRecord) Average {
	window := ledger.SortedByDateDesc(matches)
	if len(window) > WindowSize {
		window = window[:WindowSize]
	}

	total := 0
	for _, m := range window {
		total += m.Points
	}
	divisor := max(len(window), MinDivisor)

	return Average{
		Average:     total / divisor,
		TotalPoints: total,
		WindowCount: len(window),
	}
}
