package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Encode serializes matches into the stored JSON array form.
func Encode(matches []MatchRecord) ([]byte, error) {
	if matches == nil {
		matches = []MatchRecord{}
	}
	data, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("failed to encode matches: %w", err)
	}
	return data, nil
}

// Decode parses a stored value. Anything that is not a JSON array of
// records is an error. Field values are taken as stored; they were checked
// when the match was created.
func Decode(data []byte) ([]MatchRecord, error) {
	var matches []MatchRecord
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to decode matches: %w", err)
	}
	if matches == nil {
		return nil, fmt.Errorf("failed to decode matches: value is not an array")
	}
	return matches, nil
}

// SortByDateDesc orders matches newest first. Matches on the same date keep
// their relative order.
func SortByDateDesc(matches []MatchRecord) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Time().After(matches[j].Date.Time())
	})
}

// SortedByDateDesc returns a sorted copy and leaves matches untouched.
func SortedByDateDesc(matches []MatchRecord) []MatchRecord {
	sorted := make([]MatchRecord, len(matches))
	copy(sorted, matches)
	SortByDateDesc(sorted)
	return sorted
}
