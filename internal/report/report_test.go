package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleMatches() []ledger.MatchRecord {
	return []ledger.MatchRecord{
		{ID: "a", Date: "2026-01-03", MyClass: 5, PartnerClass: 5, Opp1Class: 6, Opp2Class: 6, IsWin: true, Points: 452, Score: []ledger.SetScore{{21, 14}, {21, 16}}},
		{ID: "b", Date: "2026-01-10", MyClass: 5, PartnerClass: 5, Opp1Class: 6, Opp2Class: 7, IsWin: false, Points: 0, Score: []ledger.SetScore{{14, 21}, {21, 19}, {10, 15}}},
		{ID: "c", Date: "2026-01-10", MyClass: 5, PartnerClass: 4, Opp1Class: 4, Opp2Class: 5, IsWin: true, Points: 797, Score: []ledger.SetScore{{21, 18}, {21, 19}}},
		{Date: "2026-02-01", MyClass: 5, PartnerClass: 5, Opp1Class: 6, Opp2Class: 7, IsWin: true, Points: 383, Score: []ledger.SetScore{{21, 20}, {21, 20}}},
	}
}

func scoreText(score []ledger.SetScore) string {
	return "sets"
}

func TestAverageHistory(t *testing.T) {
	history := AverageHistory(sampleMatches())
	require.Len(t, history, 3)

	assert.Equal(t, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), history[0].Date)
	assert.Equal(t, 452/7, history[0].Average)
	assert.Equal(t, (452+797)/7, history[1].Average)
	assert.Equal(t, (452+797+383)/7, history[2].Average)

	assert.Empty(t, AverageHistory(nil))

	undated := append(sampleMatches(), ledger.MatchRecord{Date: "", IsWin: true, Points: 70})
	history = AverageHistory(undated)
	require.Len(t, history, 3, "an unparsable date is not a day of its own")
	assert.Equal(t, (452+70)/7, history[0].Average)
}

func TestWorkbook(t *testing.T) {
	data, err := Workbook(sampleMatches(), 457, scoreText)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(MatchesSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	newest, err := f.GetCellValue(MatchesSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", newest)

	result, err := f.GetCellValue(MatchesSheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "LOSS", result, "same-day matches keep storage order")

	rows, err := f.GetRows(MatchesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 5)

	avg, err := f.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "233", avg)

	needed, err := f.GetCellValue(SummarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "224", needed)
}

func TestAverageChart(t *testing.T) {
	pngMagic := []byte("\x89PNG")

	data, err := AverageChart(sampleMatches(), 457)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	t.Run("single day and empty histories still render", func(t *testing.T) {
		data, err := AverageChart(sampleMatches()[:1], 457)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))

		data, err = AverageChart(nil, 457)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngMagic))
	})
}

func TestBackup(t *testing.T) {
	now := time.Date(2026, 2, 16, 9, 30, 0, 0, time.UTC)
	data, err := EncodeBackup(sampleMatches(), now)
	require.NoError(t, err)

	b, err := DecodeBackup(data)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Version)
	assert.Equal(t, ledger.StorageKey, b.Key)
	assert.True(t, now.Equal(b.ExportedAt))
	if diff := cmp.Diff(sampleMatches(), b.Matches); diff != "" {
		t.Fatalf("backup mismatch (-want +got):\n%s", diff)
	}

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := DecodeBackup([]byte("not msgpack at all"))
		assert.Error(t, err)
	})
}
