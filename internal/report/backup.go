package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/vmihailenco/msgpack/v5"
)

const backupVersion = 1

// Backup is a point-in-time copy of the ledger.
type Backup struct {
	Version    int                  `json:"version"`
	Key        string               `json:"key"`
	ExportedAt time.Time            `json:"exportedAt"`
	Matches    []ledger.MatchRecord `json:"matches"`
}

// EncodeBackup serializes matches as msgpack. Field names follow the stored JSON layout.
func EncodeBackup(matches []ledger.MatchRecord, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	err := enc.Encode(Backup{
		Version:    backupVersion,
		Key:        ledger.StorageKey,
		ExportedAt: now.UTC(),
		Matches:    matches,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeBackup reads a backup written by EncodeBackup and checks every date.
func DecodeBackup(data []byte) (Backup, error) {
	var b Backup
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&b); err != nil {
		return Backup{}, fmt.Errorf("failed to decode backup: %w", err)
	}
	if b.Version != backupVersion {
		return Backup{}, fmt.Errorf("unsupported backup version %d", b.Version)
	}
	for i, m := range b.Matches {
		if _, err := ledger.ParseDate(string(m.Date)); err != nil {
			return Backup{}, fmt.Errorf("backup match %d: %w", i, err)
		}
	}
	return b, nil
}
