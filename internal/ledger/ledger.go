package ledger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/bvtracker/internal/kv"
	"github.com/mauv0809/bvtracker/internal/metrics"
)

var (
	ErrIndexOutOfRange = errors.New("match position out of range")
	ErrNotFound        = errors.New("match not found")
)

// Ledger is the persisted match history. It keeps no copy in memory: every
// operation reads the whole stored value, changes it and writes it back.
type Ledger struct {
	kv      kv.Store
	key     string
	metrics metrics.Metrics
	mu      sync.Mutex
}

// New creates a Ledger stored under StorageKey in store.
func New(store kv.Store, m metrics.Metrics) *Ledger {
	return &Ledger{
		kv:      store,
		key:     StorageKey,
		metrics: m,
	}
}

// Load returns every stored match in storage order. A missing or unreadable
// value is treated as an empty history.
func (l *Ledger) Load() []MatchRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked()
}

func (l *Ledger) loadLocked() []MatchRecord {
	raw, ok, err := l.kv.Get(l.key)
	if err != nil {
		log.Warn("Failed to read ledger, treating as empty", "key", l.key, "error", err)
		l.metrics.IncStorageCorruptions()
		return []MatchRecord{}
	}
	if !ok || len(raw) == 0 {
		return []MatchRecord{}
	}
	matches, err := Decode(raw)
	if err != nil {
		log.Warn("Stored ledger is corrupt, treating as empty", "key", l.key, "error", err)
		l.metrics.IncStorageCorruptions()
		return []MatchRecord{}
	}
	return matches
}

// Save overwrites the stored history with matches.
func (l *Ledger) Save(matches []MatchRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.saveLocked(matches)
}

func (l *Ledger) saveLocked(matches []MatchRecord) error {
	data, err := Encode(matches)
	if err != nil {
		return err
	}
	if err := l.kv.Set(l.key, data); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}
	return nil
}

// Append adds record to the stored history.
func (l *Ledger) Append(record MatchRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	matches := l.loadLocked()
	matches = append(matches, record)
	if err := l.saveLocked(matches); err != nil {
		return err
	}
	log.Debug("Appended match", "id", record.ID, "date", record.Date, "points", record.Points)
	return nil
}

// DeleteAt removes the match at index in the newest-first view of the
// history and stores the remainder in that order. The index is only
// meaningful against a view loaded after the last change.
func (l *Ledger) DeleteAt(index int) (MatchRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	matches := l.loadLocked()
	SortByDateDesc(matches)
	if index < 0 || index >= len(matches) {
		return MatchRecord{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(matches))
	}
	removed := matches[index]
	matches = append(matches[:index], matches[index+1:]...)
	if err := l.saveLocked(matches); err != nil {
		return MatchRecord{}, err
	}
	return removed, nil
}

// DeleteByID removes the match carrying id, leaving storage order intact.
func (l *Ledger) DeleteByID(id string) (MatchRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	matches := l.loadLocked()
	for i, m := range matches {
		if id != "" && m.ID == id {
			matches = append(matches[:i], matches[i+1:]...)
			if err := l.saveLocked(matches); err != nil {
				return MatchRecord{}, err
			}
			return m, nil
		}
	}
	return MatchRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Clear removes the stored history entirely.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.kv.Delete(l.key); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}
	return nil
}

// AssignMissingIDs gives every record without an identifier a new one and
// reports how many were assigned. Nothing is written when none are missing.
func (l *Ledger) AssignMissingIDs() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	matches := l.loadLocked()
	assigned := 0
	for i := range matches {
		if matches[i].ID == "" {
			matches[i].ID = uuid.NewString()
			assigned++
		}
	}
	if assigned == 0 {
		return 0, nil
	}
	if err := l.saveLocked(matches); err != nil {
		return 0, err
	}
	log.Info("Assigned identifiers to legacy matches", "count", assigned)
	return assigned, nil
}
