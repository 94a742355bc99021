package tracker

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/bvtracker/internal/baseline"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/metrics"
	"github.com/mauv0809/bvtracker/internal/points"
	"github.com/mauv0809/bvtracker/internal/scoring"
)

// New creates a Tracker. A target of zero or less uses scoring.TargetAverage.
// rnd drives the baseline score fabrication.
func New(store Store, metrics metrics.Metrics, target int, rnd *rand.Rand) *Tracker {
	if target <= 0 {
		target = scoring.TargetAverage
	}
	return &Tracker{
		store:   store,
		metrics: metrics,
		target:  target,
		newID:   uuid.NewString,
		rnd:     rnd,
	}
}

// Open seeds the baseline into an empty ledger and gives legacy records an
// identifier so they can be deleted by id.
func (t *Tracker) Open() error {
	if _, err := t.seed(); err != nil {
		return err
	}
	if _, err := t.store.AssignMissingIDs(); err != nil {
		return fmt.Errorf("failed to assign match identifiers: %w", err)
	}
	return nil
}

func (t *Tracker) seed() (bool, error) {
	t.rndMu.Lock()
	defer t.rndMu.Unlock()
	return baseline.SeedIfEmpty(t.store, t.rnd)
}

// Matches returns the history newest first.
func (t *Tracker) Matches() []ledger.MatchRecord {
	return ledger.SortedByDateDesc(t.store.Load())
}

// Summary recomputes the view from the stored history.
func (t *Tracker) Summary() View {
	matches := t.Matches()
	avg := scoring.RollingAverage(matches)
	t.metrics.SetRollingAverage(float64(avg.Average))

	rows := make([]Row, len(matches))
	for i, m := range matches {
		rows[i] = Row{
			Position:  i,
			ID:        m.ID,
			Date:      m.Date.Format(),
			ISODate:   string(m.Date),
			Score:     FormatScore(m.Score),
			Opponents: fmt.Sprintf("%d+%d", m.Opp1Class, m.Opp2Class),
			IsWin:     m.IsWin,
			Points:    m.Points,
		}
	}

	return View{
		Average:    avg,
		MatchCount: len(matches),
		Target:     t.target,
		Needed:     max(0, t.target-avg.Average),
		Progress:   progress(avg.Average, t.target),
		Rows:       rows,
	}
}

func progress(avg, target int) int {
	ratio := float64(avg) / float64(target)
	ratio = math.Max(0, math.Min(1, ratio))
	return int(math.Round(ratio * 100))
}

// Preview resolves the outcome of a partially entered match without storing it.
func (t *Tracker) Preview(in MatchInput) Preview {
	outcome := scoring.ResolveOutcome(in.Sets)
	p := Preview{Outcome: outcome}
	switch outcome {
	case scoring.OutcomeWin:
		r1, r2 := points.Rank(in.Opp1Class), points.Rank(in.Opp2Class)
		if r1.Valid() && r2.Valid() {
			pts := scoring.WinPoints(r1, r2)
			p.Points = &pts
		}
	case scoring.OutcomeLoss:
		zero := 0
		p.Points = &zero
	}
	return p
}

// Add validates in and appends it to the ledger.
func (t *Tracker) Add(in MatchInput) (ledger.MatchRecord, error) {
	record, err := NewMatch(in, t.newID)
	if err != nil {
		t.metrics.IncValidationFailures()
		log.Info("Rejected match entry", "error", err)
		return ledger.MatchRecord{}, err
	}
	if err := t.store.Append(record); err != nil {
		return ledger.MatchRecord{}, err
	}
	t.metrics.IncMatchesAdded()
	log.Info("Match added", "id", record.ID, "date", record.Date, "win", record.IsWin, "points", record.Points)
	return record, nil
}

// DeleteAt removes the match at a position of the newest-first list.
func (t *Tracker) DeleteAt(position int) (ledger.MatchRecord, error) {
	removed, err := t.store.DeleteAt(position)
	if err != nil {
		return ledger.MatchRecord{}, err
	}
	t.metrics.IncMatchesDeleted()
	log.Info("Match deleted", "position", position, "id", removed.ID, "date", removed.Date)
	return removed, nil
}

// DeleteByID removes the match with the given identifier.
func (t *Tracker) DeleteByID(id string) (ledger.MatchRecord, error) {
	removed, err := t.store.DeleteByID(id)
	if err != nil {
		return ledger.MatchRecord{}, err
	}
	t.metrics.IncMatchesDeleted()
	log.Info("Match deleted", "id", removed.ID, "date", removed.Date)
	return removed, nil
}

// Delete accepts either a match identifier or a list position.
func (t *Tracker) Delete(ref string) (ledger.MatchRecord, error) {
	if position, err := strconv.Atoi(ref); err == nil {
		return t.DeleteAt(position)
	}
	return t.DeleteByID(ref)
}

// Reset wipes the ledger and restores the baseline history.
func (t *Tracker) Reset() error {
	if err := t.store.Clear(); err != nil {
		return err
	}
	seeded, err := t.seed()
	if err != nil {
		return err
	}
	if !seeded {
		return errors.New("ledger was not empty after clearing")
	}
	t.metrics.IncResets()
	log.Info("Ledger reset to baseline")
	return nil
}

// Restore replaces the whole history, as when loading a backup.
func (t *Tracker) Restore(matches []ledger.MatchRecord) error {
	if err := t.store.Save(matches); err != nil {
		return err
	}
	if _, err := t.store.AssignMissingIDs(); err != nil {
		return err
	}
	log.Info("Ledger restored", "count", len(matches))
	return nil
}

// Target returns the promotion target average.
func (t *Tracker) Target() int {
	return t.target
}

// FormatScore renders sets as "21–14, 21–16", or "–" when there are none.
func FormatScore(score []ledger.SetScore) string {
	if len(score) == 0 {
		return "–"
	}
	parts := make([]string, len(score))
	for i, s := range score {
		parts[i] = fmt.Sprintf("%d–%d", s[0], s[1])
	}
	return strings.Join(parts, ", ")
}
