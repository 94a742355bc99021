package tracker

import "github.com/mauv0809/bvtracker/internal/ledger"

// Store defines the ledger operations required by the tracker.
type Store interface {
	Load() []ledger.MatchRecord
	Save(matches []ledger.MatchRecord) error
	Append(record ledger.MatchRecord) error
	DeleteAt(index int) (ledger.MatchRecord, error)
	DeleteByID(id string) (ledger.MatchRecord, error)
	Clear() error
	AssignMissingIDs() (int, error)
}
