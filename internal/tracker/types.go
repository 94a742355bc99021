package tracker

import (
	"math/rand"
	"sync"

	"github.com/mauv0809/bvtracker/internal/metrics"
	"github.com/mauv0809/bvtracker/internal/scoring"
)

// Tracker ties the ledger to the scoring rules and builds the view shown to
// the user. It holds no copy of the history.
type Tracker struct {
	store   Store
	metrics metrics.Metrics
	target  int
	newID   func() string

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// MatchInput is a match as entered by the user, before validation.
type MatchInput struct {
	Date         string             `json:"date"`
	MyClass      int                `json:"myClass"`
	PartnerClass int                `json:"partnerClass"`
	Opp1Class    int                `json:"opp1Class"`
	Opp2Class    int                `json:"opp2Class"`
	Sets         []scoring.SetEntry `json:"sets"`
}

// Preview is the live result of a partially entered match.
type Preview struct {
	Outcome scoring.Outcome `json:"outcome"`
	Points  *int            `json:"points"`
}

// Row is one match as displayed, newest first.
type Row struct {
	Position  int    `json:"position"`
	ID        string `json:"id"`
	Date      string `json:"date"`
	ISODate   string `json:"isoDate"`
	Score     string `json:"score"`
	Opponents string `json:"opponents"`
	IsWin     bool   `json:"isWin"`
	Points    int    `json:"points"`
}

// View is the derived state of the whole ledger.
type View struct {
	scoring.Average
	MatchCount int   `json:"matchCount"`
	Target     int   `json:"target"`
	Needed     int   `json:"needed"`
	Progress   int   `json:"progress"`
	Rows       []Row `json:"rows"`
}
