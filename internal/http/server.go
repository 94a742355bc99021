package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bvtracker/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func NewServer(t Tracker, metricsSvc metrics.Metrics, metricsHandler http.Handler) *Server {
	server := &Server{
		Tracker:        t,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestLogger))
	s.Router.Handle("GET /summary", Chain(s.SummaryHandler(), requestLogger))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), requestLogger))
	s.Router.Handle("POST /matches", Chain(s.AddMatchHandler(), requestLogger))
	s.Router.Handle("POST /matches/preview", Chain(s.PreviewHandler(), requestLogger))
	s.Router.Handle("DELETE /matches/{id}", Chain(s.DeleteMatchHandler(), requestLogger))
	s.Router.Handle("DELETE /matches/at/{index}", Chain(s.DeleteAtHandler(), requestLogger))
	s.Router.Handle("POST /reset", Chain(s.ResetHandler(), requestLogger))
	s.Router.Handle("GET /export.xlsx", Chain(s.ExportHandler(), requestLogger))
	s.Router.Handle("GET /chart.png", Chain(s.ChartHandler(), requestLogger))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server gracefully stopped")
	return nil
}
