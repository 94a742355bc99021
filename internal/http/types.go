package http

import (
	"net/http"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/metrics"
	"github.com/mauv0809/bvtracker/internal/tracker"
)

// Tracker defines the tracker operations the HTTP layer exposes.
type Tracker interface {
	Summary() tracker.View
	Matches() []ledger.MatchRecord
	Preview(in tracker.MatchInput) tracker.Preview
	Add(in tracker.MatchInput) (ledger.MatchRecord, error)
	DeleteAt(position int) (ledger.MatchRecord, error)
	DeleteByID(id string) (ledger.MatchRecord, error)
	Reset() error
	Target() int
}

type Server struct {
	Tracker        Tracker
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Router         *http.ServeMux
}

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}
