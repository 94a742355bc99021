package ledger

import "sync"

// MockStore is a mock of the ledger for testing. Unset funcs fall back to an
// in-memory slice. It is safe for concurrent use.
type MockStore struct {
	mu      sync.Mutex
	matches []MatchRecord

	AppendFunc func(record MatchRecord) error
	SaveFunc   func(matches []MatchRecord) error
	ClearFunc  func() error

	AppendCalls []MatchRecord
	SaveCalls   [][]MatchRecord
}

// NewMock creates a mock holding matches.
func NewMock(matches ...MatchRecord) *MockStore {
	return &MockStore{matches: matches}
}

func (m *MockStore) Load() []MatchRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MatchRecord, len(m.matches))
	copy(out, m.matches)
	return out
}

func (m *MockStore) Save(matches []MatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, matches)
	if m.SaveFunc != nil {
		if err := m.SaveFunc(matches); err != nil {
			return err
		}
	}
	m.matches = append([]MatchRecord(nil), matches...)
	return nil
}

func (m *MockStore) Append(record MatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendCalls = append(m.AppendCalls, record)
	if m.AppendFunc != nil {
		if err := m.AppendFunc(record); err != nil {
			return err
		}
	}
	m.matches = append(m.matches, record)
	return nil
}

func (m *MockStore) DeleteAt(index int) (MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	SortByDateDesc(m.matches)
	if index < 0 || index >= len(m.matches) {
		return MatchRecord{}, ErrIndexOutOfRange
	}
	removed := m.matches[index]
	m.matches = append(m.matches[:index], m.matches[index+1:]...)
	return removed, nil
}

func (m *MockStore) DeleteByID(id string) (MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.matches {
		if r.ID == id {
			m.matches = append(m.matches[:i], m.matches[i+1:]...)
			return r, nil
		}
	}
	return MatchRecord{}, ErrNotFound
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		if err := m.ClearFunc(); err != nil {
			return err
		}
	}
	m.matches = nil
	return nil
}

func (m *MockStore) AssignMissingIDs() (int, error) {
	return 0, nil
}
