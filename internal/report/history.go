package report

import (
	"sort"
	"time"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/scoring"
)

// AveragePoint is the rolling average as it stood at the end of a match day.
type AveragePoint struct {
	Date    time.Time
	Average int
}

// AverageHistory replays the ledger day by day, oldest first. Matches with
// an unparsable date get no point of their own but still count as the oldest.
func AverageHistory(matches []ledger.MatchRecord) []AveragePoint {
	byDay := make(map[ledger.Date]bool)
	for _, m := range matches {
		if m.Date.Time().IsZero() {
			continue
		}
		byDay[m.Date] = true
	}
	days := make([]ledger.Date, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Time().Before(days[j].Time()) })

	history := make([]AveragePoint, 0, len(days))
	for _, day := range days {
		cutoff := day.Time()
		var upTo []ledger.MatchRecord
		for _, m := range matches {
			if !m.Date.Time().After(cutoff) {
				upTo = append(upTo, m)
			}
		}
		history = append(history, AveragePoint{
			Date:    cutoff,
			Average: scoring.RollingAverage(upTo).Average,
		})
	}
	return history
}
