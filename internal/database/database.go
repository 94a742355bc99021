package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// InitDB opens the SQLite database at dbPath and applies every migration in
// migrationsFS. The returned teardown closes the database.
func InitDB(dbPath string, migrationsFS fs.FS) (*sql.DB, func(), error) {
	log.Info("Initializing local SQLite database", "path", dbPath)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = migrate(db, migrationsFS); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

func migrate(db *sql.DB, migrationsFS fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrationsFS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, r := range results {
		log.Info("Applied migration", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	log.Info("Database initialized successfully")
	return nil
}
