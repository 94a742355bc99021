package tracker

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const progressWidth = 30

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	winStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// RenderSummary writes the headline numbers and the progress bar.
func RenderSummary(w io.Writer, v View) error {
	filled := v.Progress * progressWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)

	_, err := fmt.Fprintf(w, "%s %d\n%s %d (Target: %d · Current: %d)\n%s %d\n%s %s %d%%\n",
		labelStyle.Render("Average:"), v.Average.Average,
		labelStyle.Render("Needed:"), v.Needed, v.Target, v.Average.Average,
		labelStyle.Render("Matches:"), v.MatchCount,
		labelStyle.Render("Progress:"), bar, v.Progress,
	)
	return err
}

// RenderTable writes the match list, newest first, with the positions
// accepted by delete.
func RenderTable(w io.Writer, v View) error {
	rows := make([][]string, len(v.Rows))
	for i, r := range v.Rows {
		result := lossStyle.Render("LOSS")
		if r.IsWin {
			result = winStyle.Render("WIN")
		}
		rows[i] = []string{
			strconv.Itoa(r.Position),
			r.Date,
			r.Score,
			r.Opponents,
			result,
			strconv.Itoa(r.Points),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Date", "Score", "Opp", "Result", "Points").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Render writes the summary followed by the match table.
func Render(w io.Writer, v View) error {
	if err := RenderSummary(w, v); err != nil {
		return err
	}
	return RenderTable(w, v)
}
