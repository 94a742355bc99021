package report

import (
	"fmt"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const (
	MatchesSheet = "Matches"
	SummarySheet = "Summary"
)

var matchHeaders = []interface{}{"Date", "Score", "Result", "Opponent 1", "Opponent 2", "My class", "Partner class", "Points"}

// Workbook exports the history, newest first, and the current average as an xlsx file.
func Workbook(matches []ledger.MatchRecord, target int, formatScore func([]ledger.SetScore) string) ([]byte, error) {
	sorted := ledger.SortedByDateDesc(matches)
	avg := scoring.RollingAverage(sorted)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MatchesSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(MatchesSheet, "A1", &matchHeaders); err != nil {
		return nil, err
	}
	for i, m := range sorted {
		result := "LOSS"
		if m.IsWin {
			result = "WIN"
		}
		row := []interface{}{string(m.Date), formatScore(m.Score), result, m.Opp1Class, m.Opp2Class, m.MyClass, m.PartnerClass, m.Points}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(MatchesSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(MatchesSheet, "A1", "H1", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(MatchesSheet, "A", "B", 18); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Average", avg.Average},
		{"Total points", avg.TotalPoints},
		{"Matches in window", avg.WindowCount},
		{"Matches", len(sorted)},
		{"Target", target},
		{"Needed", max(0, target-avg.Average)},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
