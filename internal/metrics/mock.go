package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	matchesAdded       int
	matchesDeleted     int
	resets             int
	validationFailures int
	storageCorruptions int
	rollingAverage     float64
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncMatchesAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesAdded++
}

func (m *Mock) IncMatchesDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesDeleted++
}

func (m *Mock) IncResets() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
}

func (m *Mock) IncValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures++
}

func (m *Mock) IncStorageCorruptions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storageCorruptions++
}

func (m *Mock) SetRollingAverage(avg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollingAverage = avg
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesAdded returns the number of times IncMatchesAdded was called.
func (m *Mock) MatchesAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesAdded
}

// MatchesDeleted returns the number of times IncMatchesDeleted was called.
func (m *Mock) MatchesDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesDeleted
}

// Resets returns the number of times IncResets was called.
func (m *Mock) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}

// ValidationFailures returns the number of times IncValidationFailures was called.
func (m *Mock) ValidationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationFailures
}

// StorageCorruptions returns the number of times IncStorageCorruptions was called.
func (m *Mock) StorageCorruptions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storageCorruptions
}

// RollingAverage returns the last value passed to SetRollingAverage.
func (m *Mock) RollingAverage() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollingAverage
}
