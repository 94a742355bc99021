package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bvtracker/internal/config"
	"github.com/mauv0809/bvtracker/internal/database"
	"github.com/mauv0809/bvtracker/internal/kv"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/metrics"
	"github.com/mauv0809/bvtracker/internal/tracker"
	"github.com/mauv0809/bvtracker/migrations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	dbPath         string
	verbose        bool
	cfg            config.Config
	trk            *tracker.Tracker
	metricsSvc     *metrics.Service
	metricsHandler http.Handler
	teardown       func()
)

var rootCmd = &cobra.Command{
	Use:   "bvtracker",
	Short: "Track doubles results and the rolling ranking average",
	Long: `A command-line tracker for doubles match results. It keeps the match
history in a local SQLite file and derives the rolling average over the
20 most recent matches, and how far it is from the promotion target.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log.SetLevel(cfg.Level())
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		db, dbTeardown, err := database.InitDB(cfg.DBPath, migrations.FS)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", cfg.DBPath, err)
		}
		teardown = dbTeardown

		registry := prometheus.NewRegistry()
		metricsSvc = metrics.NewService(registry)
		metricsHandler = metrics.NewMetricsHandler(registry)
		trk = tracker.New(ledger.New(kv.New(db), metricsSvc), metricsSvc, cfg.TargetAverage, cfg.Rand())
		return trk.Open()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (default $BVTRACKER_DB or bvtracker.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// run executes one command line. The database is closed on every path,
// including a failed Open or a failing command.
func run(args []string, out io.Writer) error {
	defer closeDB()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}

func closeDB() {
	if teardown != nil {
		teardown()
		teardown = nil
	}
	trk = nil
}

func Execute() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
