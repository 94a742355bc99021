package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/bvtracker/internal/kv"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedger(t *testing.T) (*ledger.Ledger, *kv.Memory, *metrics.Mock) {
	t.Helper()
	store := kv.NewMemory()
	m := metrics.NewMock()
	return ledger.New(store, m), store, m
}

func record(id, date string, isWin bool, points int) ledger.MatchRecord {
	score := []ledger.SetScore{{21, 15}, {21, 17}}
	if !isWin {
		score = []ledger.SetScore{{15, 21}, {17, 21}}
	}
	return ledger.MatchRecord{
		ID:           id,
		Date:         ledger.Date(date),
		MyClass:      5,
		PartnerClass: 5,
		Opp1Class:    6,
		Opp2Class:    6,
		IsWin:        isWin,
		Points:       points,
		Score:        score,
	}
}

// fakeRecords generates well-formed records with gofakeit.
func fakeRecords(f *gofakeit.Faker, n int) []ledger.MatchRecord {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	out := make([]ledger.MatchRecord, 0, n)
	for i := 0; i < n; i++ {
		isWin := f.Bool()
		sets := []ledger.SetScore{{f.Number(0, 30), f.Number(0, 30)}, {f.Number(0, 30), f.Number(0, 30)}}
		if f.Bool() {
			sets = append(sets, ledger.SetScore{f.Number(0, 30), f.Number(0, 30)})
		}
		points := 0
		if isWin {
			points = f.Number(50, 2831)
		}
		id := ""
		if f.Bool() {
			id = f.UUID()
		}
		out = append(out, ledger.MatchRecord{
			ID:           id,
			Date:         ledger.NewDate(f.DateRange(start, end)),
			MyClass:      f.Number(1, 12),
			PartnerClass: f.Number(1, 12),
			Opp1Class:    f.Number(1, 12),
			Opp2Class:    f.Number(1, 12),
			IsWin:        isWin,
			Points:       points,
			Score:        sets,
		})
	}
	return out
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	f := gofakeit.New(7)
	for i := 0; i < 25; i++ {
		records := fakeRecords(f, f.Number(0, 30))

		data, err := ledger.Encode(records)
		require.NoError(t, err)
		decoded, err := ledger.Decode(data)
		require.NoError(t, err)

		if len(records) == 0 {
			assert.Empty(t, decoded)
			continue
		}
		if diff := cmp.Diff(records, decoded); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestEncode_StoredLayout(t *testing.T) {
	data, err := ledger.Encode([]ledger.MatchRecord{{
		Date:         "2026-02-15",
		MyClass:      5,
		PartnerClass: 5,
		Opp1Class:    6,
		Opp2Class:    6,
		IsWin:        true,
		Points:       452,
		Score:        []ledger.SetScore{{21, 14}, {14, 21}, {21, 18}},
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2026-02-15","myClass":5,"partnerClass":5,"opp1Class":6,"opp2Class":6,"isWin":true,"points":452,"score":[[21,14],[14,21],[21,18]]}]`, string(data))

	empty, err := ledger.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDecode_RejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		"not json":     `{{{`,
		"object":       `{"date":"2026-01-01"}`,
		"null":         `null`,
		"number array": `[1,2,3]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ledger.Decode([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing value is an empty history", func(t *testing.T) {
		l, _, m := setupLedger(t)
		matches := l.Load()
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
		assert.Equal(t, 0, m.StorageCorruptions())
	})

	t.Run("corrupt value is an empty history", func(t *testing.T) {
		l, store, m := setupLedger(t)
		require.NoError(t, store.Set(ledger.StorageKey, []byte(`{"not":"a list"}`)))
		assert.Empty(t, l.Load())
		assert.Equal(t, 1, m.StorageCorruptions())
	})

	t.Run("records are not re-validated", func(t *testing.T) {
		l, store, m := setupLedger(t)
		raw := `[{"date":"2026-01-03","myClass":5,"partnerClass":5,"opp1Class":6,"opp2Class":7,"isWin":true,"points":383,"score":[[21,15],[21,17]]},` +
			`{"date":"","myClass":5,"partnerClass":5,"opp1Class":6,"opp2Class":7,"isWin":false,"points":0,"score":[]},` +
			`{"date":"2026-01-10","myClass":5,"partnerClass":5,"opp1Class":6,"opp2Class":7,"isWin":false,"points":0,"score":[[15,21],[17,21]]}]`
		require.NoError(t, store.Set(ledger.StorageKey, []byte(raw)))

		matches := l.Load()
		require.Len(t, matches, 3)
		assert.Equal(t, ledger.Date(""), matches[1].Date)
		assert.Equal(t, 0, m.StorageCorruptions())

		require.NoError(t, l.Append(record("new", "2026-01-20", true, 452)))
		matches = l.Load()
		require.Len(t, matches, 4)
		assert.Equal(t, ledger.Date("2026-01-03"), matches[0].Date)
		assert.Equal(t, ledger.Date("2026-01-10"), matches[2].Date)
		assert.Equal(t, "new", matches[3].ID)

		sorted := ledger.SortedByDateDesc(matches)
		assert.Equal(t, ledger.Date(""), sorted[3].Date, "unparsable dates sort last")
	})

	t.Run("store errors are an empty history", func(t *testing.T) {
		m := metrics.NewMock()
		l := ledger.New(failingStore{}, m)
		assert.Empty(t, l.Load())
		assert.Equal(t, 1, m.StorageCorruptions())
	})
}

func TestAppendAndSave(t *testing.T) {
	l, store, _ := setupLedger(t)

	require.NoError(t, l.Append(record("a", "2026-01-03", true, 452)))
	require.NoError(t, l.Append(record("b", "2026-01-10", false, 0)))

	matches := l.Load()
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].ID, "storage order is insertion order")
	assert.Equal(t, "b", matches[1].ID)

	raw, ok, err := store.Get(ledger.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"date":"2026-01-10"`)

	require.NoError(t, l.Save(nil))
	assert.Empty(t, l.Load())
}

func TestDeleteAt(t *testing.T) {
	t.Run("index refers to the newest-first view", func(t *testing.T) {
		l, _, _ := setupLedger(t)
		require.NoError(t, l.Save([]ledger.MatchRecord{
			record("old", "2025-12-20", true, 452),
			record("new", "2026-02-15", true, 383),
			record("mid", "2026-01-10", false, 0),
		}))

		removed, err := l.DeleteAt(1)
		require.NoError(t, err)
		assert.Equal(t, "mid", removed.ID)

		matches := l.Load()
		require.Len(t, matches, 2)
		assert.Equal(t, "new", matches[0].ID)
		assert.Equal(t, "old", matches[1].ID)
	})

	t.Run("out of range index leaves storage untouched", func(t *testing.T) {
		l, _, _ := setupLedger(t)
		require.NoError(t, l.Append(record("a", "2026-01-03", true, 452)))

		_, err := l.DeleteAt(1)
		assert.ErrorIs(t, err, ledger.ErrIndexOutOfRange)
		_, err = l.DeleteAt(-1)
		assert.ErrorIs(t, err, ledger.ErrIndexOutOfRange)
		assert.Len(t, l.Load(), 1)
	})
}

func TestDeleteByID(t *testing.T) {
	l, _, _ := setupLedger(t)
	require.NoError(t, l.Save([]ledger.MatchRecord{
		record("a", "2026-01-03", true, 452),
		record("b", "2026-01-03", false, 0),
		record("c", "2026-01-04", true, 383),
	}))

	removed, err := l.DeleteByID("b")
	require.NoError(t, err)
	assert.Equal(t, "b", removed.ID)

	matches := l.Load()
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "c", matches[1].ID)

	_, err = l.DeleteByID("b")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	_, err = l.DeleteByID("")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestClear(t *testing.T) {
	l, store, _ := setupLedger(t)
	require.NoError(t, l.Append(record("a", "2026-01-03", true, 452)))
	require.NoError(t, l.Clear())

	_, ok, err := store.Get(ledger.StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, l.Load())
}

func TestAssignMissingIDs(t *testing.T) {
	l, _, _ := setupLedger(t)
	require.NoError(t, l.Save([]ledger.MatchRecord{
		record("", "2026-01-03", true, 452),
		record("keep", "2026-01-04", false, 0),
		record("", "2026-01-05", true, 383),
	}))

	assigned, err := l.AssignMissingIDs()
	require.NoError(t, err)
	assert.Equal(t, 2, assigned)

	matches := l.Load()
	assert.NotEmpty(t, matches[0].ID)
	assert.Equal(t, "keep", matches[1].ID)
	assert.NotEmpty(t, matches[2].ID)
	assert.NotEqual(t, matches[0].ID, matches[2].ID)

	assigned, err = l.AssignMissingIDs()
	require.NoError(t, err)
	assert.Equal(t, 0, assigned)
}

func TestSortedByDateDesc_IsStable(t *testing.T) {
	matches := []ledger.MatchRecord{
		record("1", "2026-01-10", true, 1),
		record("2", "2026-02-01", true, 2),
		record("3", "2026-01-10", true, 3),
		record("4", "2026-01-10", true, 4),
	}
	sorted := ledger.SortedByDateDesc(matches)

	ids := make([]string, len(sorted))
	for i, m := range sorted {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids)
	assert.Equal(t, "1", matches[0].ID, "input must not be reordered")
}

func TestDate(t *testing.T) {
	d, err := ledger.ParseDate("2026-02-15")
	require.NoError(t, err)
	assert.Equal(t, "15-02-2026", d.Format())
	assert.Equal(t, ledger.Date("2026-02-15"), ledger.NewDate(time.Date(2026, 2, 15, 22, 30, 0, 0, time.UTC)))

	assert.Equal(t, "garbage", ledger.Date("garbage").Format())

	_, err = ledger.ParseDate("")
	assert.Error(t, err)
	_, err = ledger.ParseDate("2026-13-01")
	assert.Error(t, err)
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk on fire") }
func (failingStore) Set(string, []byte) error         { return errors.New("disk on fire") }
func (failingStore) Delete(string) error              { return errors.New("disk on fire") }
