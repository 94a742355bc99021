package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesAdded       prometheus.Counter
	MatchesDeleted     prometheus.Counter
	Resets             prometheus.Counter
	ValidationFailures prometheus.Counter
	StorageCorruptions prometheus.Counter
	RollingAverage     prometheus.Gauge
	StartupTimeSeconds prometheus.Gauge
}
