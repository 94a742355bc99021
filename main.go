package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bvtracker/internal/config"
	"github.com/mauv0809/bvtracker/internal/database"
	server "github.com/mauv0809/bvtracker/internal/http"
	"github.com/mauv0809/bvtracker/internal/kv"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/metrics"
	"github.com/mauv0809/bvtracker/internal/tracker"
	"github.com/mauv0809/bvtracker/migrations"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	log.SetLevel(cfg.Level())

	db, dbTeardown, err := database.InitDB(cfg.DBPath, migrations.FS)
	if err != nil {
		log.Fatal("Failed to initialize database", "path", cfg.DBPath, "error", err)
	}
	defer dbTeardown()

	metricsSvc := metrics.NewService()
	t := tracker.New(ledger.New(kv.New(db), metricsSvc), metricsSvc, cfg.TargetAverage, cfg.Rand())
	if err := t.Open(); err != nil {
		log.Fatal("Failed to open match ledger", "error", err)
	}
	s := server.NewServer(t, metricsSvc, metrics.NewMetricsHandler())

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := s.ListenAndServe(ctx, cfg.Addr()); err != nil {
		log.Error("Server stopped with error", "error", err)
	}
}
