package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bvtracker/internal/dateparse"
	server "github.com/mauv0809/bvtracker/internal/http"
	"github.com/mauv0809/bvtracker/internal/report"
	"github.com/mauv0809/bvtracker/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	matchDate    string
	myClass      int
	partnerClass int
	opp1Class    int
	opp2Class    int
	setFlags     []string
	deleteID     string
)

func init() {
	for _, cmd := range []*cobra.Command{addCmd, previewCmd} {
		cmd.Flags().StringVar(&matchDate, "date", "", `Match date: 2026-02-15, 15-02-2026 or "yesterday" (default today)`)
		cmd.Flags().IntVar(&myClass, "me", 5, "Your class (1-12)")
		cmd.Flags().IntVar(&partnerClass, "partner", 5, "Partner class (1-12)")
		cmd.Flags().IntVar(&opp1Class, "opp1", 0, "First opponent class (1-12)")
		cmd.Flags().IntVar(&opp2Class, "opp2", 0, "Second opponent class (1-12)")
		cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Set score as ours-theirs, e.g. 21-14 (repeat per set)")
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "Delete the match with this identifier")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(serveCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the rolling average and the progress towards the target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tracker.RenderSummary(cmd.OutOrStdout(), trk.Summary())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all matches, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tracker.Render(cmd.OutOrStdout(), trk.Summary())
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a match",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := matchInput()
		if err != nil {
			return err
		}
		record, err := trk.Add(in)
		if err != nil {
			return err
		}
		result := "LOSS"
		if record.IsWin {
			result = "WIN"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s on %s: %s, %d points (%s)\n",
			result, record.Date.Format(), tracker.FormatScore(record.Score), record.Points, record.ID)
		return tracker.RenderSummary(cmd.OutOrStdout(), trk.Summary())
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the outcome and points of a match without saving it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := matchInput()
		if err != nil {
			return err
		}
		p := trk.Preview(in)
		points := "–"
		if p.Points != nil {
			points = strconv.Itoa(*p.Points)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Outcome: %s\nPoints:  %s\n", p.Outcome, points)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [position]",
	Short: "Delete a match by its position in the list or by --id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ref string
		switch {
		case deleteID != "" && len(args) == 0:
			ref = deleteID
		case deleteID == "" && len(args) == 1:
			ref = args[0]
		default:
			return errors.New("give either a position or --id")
		}
		record, err := trk.Delete(ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted match on %s (%s)\n", record.Date.Format(), tracker.FormatScore(record.Score))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every match and restore the baseline history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trk.Reset(); err != nil {
			return err
		}
		return tracker.RenderSummary(cmd.OutOrStdout(), trk.Summary())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export the match history to a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := report.Workbook(trk.Matches(), trk.Target(), tracker.FormatScore)
		if err != nil {
			return err
		}
		return writeFile(cmd, args[0], data)
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart <file.png>",
	Short: "Draw the rolling average over time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := report.AverageChart(trk.Matches(), trk.Target())
		if err != nil {
			return err
		}
		return writeFile(cmd, args[0], data)
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Write a binary backup of the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := report.EncodeBackup(trk.Matches(), time.Now())
		if err != nil {
			return err
		}
		return writeFile(cmd, args[0], data)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the ledger with the contents of a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}
		b, err := report.DecodeBackup(data)
		if err != nil {
			return err
		}
		if err := trk.Restore(b.Matches); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d matches exported at %s\n", len(b.Matches), b.ExportedAt.Format(time.RFC3339))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tracker over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := server.NewServer(trk, metricsSvc, metricsHandler)
		log.Info("Serving ledger", "db", cfg.DBPath)
		return s.ListenAndServe(ctx, cfg.Addr())
	},
}

func matchInput() (tracker.MatchInput, error) {
	date, err := dateparse.New(time.Now).Parse(matchDate)
	if err != nil {
		return tracker.MatchInput{}, err
	}
	sets, err := parseSets(setFlags)
	if err != nil {
		return tracker.MatchInput{}, err
	}
	return tracker.MatchInput{
		Date:         string(date),
		MyClass:      myClass,
		PartnerClass: partnerClass,
		Opp1Class:    opp1Class,
		Opp2Class:    opp2Class,
		Sets:         sets,
	}, nil
}

func writeFile(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
