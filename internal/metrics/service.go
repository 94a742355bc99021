package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bvtracker_matches_added_total",
			Help: "The total number of matches appended to the ledger.",
		}),
		MatchesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bvtracker_matches_deleted_total",
			Help: "The total number of matches removed from the ledger.",
		}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bvtracker_resets_total",
			Help: "The total number of resets to the baseline history.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bvtracker_validation_failures_total",
			Help: "The total number of match entries rejected before reaching the ledger.",
		}),
		StorageCorruptions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bvtracker_storage_corruptions_total",
			Help: "The total number of ledger loads that found an unreadable value.",
		}),
		RollingAverage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bvtracker_rolling_average_points",
			Help: "The rolling average from the most recent summary.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bvtracker_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesAdded,
		s.MatchesDeleted,
		s.Resets,
		s.ValidationFailures,
		s.StorageCorruptions,
		s.RollingAverage,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesAdded() {
	s.MatchesAdded.Inc()
}

func (s *Service) IncMatchesDeleted() {
	s.MatchesDeleted.Inc()
}

func (s *Service) IncResets() {
	s.Resets.Inc()
}

func (s *Service) IncValidationFailures() {
	s.ValidationFailures.Inc()
}

func (s *Service) IncStorageCorruptions() {
	s.StorageCorruptions.Inc()
}

func (s *Service) SetRollingAverage(avg float64) {
	s.RollingAverage.Set(avg)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
