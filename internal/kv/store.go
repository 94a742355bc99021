package kv

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// store keeps values in the kv table of a SQLite database.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a Store backed by db. The kv table must already exist.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set upserts the value stored under key.
func (s *store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmt, err := s.db.Prepare(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, strftime('%s', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
	`)
	if err != nil {
		log.Error("Failed to prepare statement for kv upsert", "error", err, "key", key)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(key, value); err != nil {
		log.Error("Failed to execute statement for kv upsert", "error", err, "key", key)
		return err
	}
	log.Debug("Stored value", "key", key, "bytes", len(value))
	return nil
}

func (s *store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}
