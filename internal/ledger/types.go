package ledger

import (
	"fmt"
	"time"
)

// StorageKey is the key the ledger lives under in the key-value store.
const StorageKey = "bvtracker:doubles:v2"

const dateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form.
type Date string

// ParseDate validates s as a YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// NewDate drops the time component of t.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Time returns the date at midnight UTC. An invalid date yields the zero time.
func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// Format renders the date as DD-MM-YYYY. A date that does not parse is
// returned as stored.
func (d Date) Format() string {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return string(d)
	}
	return t.Format("02-01-2006")
}

// SetScore is one set's game score as [ours, theirs].
type SetScore [2]int

// MatchRecord is a single stored match.
type MatchRecord struct {
	ID           string     `json:"id,omitempty"`
	Date         Date       `json:"date"`
	MyClass      int        `json:"myClass"`
	PartnerClass int        `json:"partnerClass"`
	Opp1Class    int        `json:"opp1Class"`
	Opp2Class    int        `json:"opp2Class"`
	IsWin        bool       `json:"isWin"`
	Points       int        `json:"points"`
	Score        []SetScore `json:"score"`
}
