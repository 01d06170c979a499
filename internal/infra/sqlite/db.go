// Package sqlite provides SQLite-based persistent storage for Bachpan
// Balance profiles, day records and the XP journal.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// FileName is the database file created inside the data directory.
const FileName = "bachpan.db"

// DB wraps a SQLite connection with WAL mode and migrations.
// It implements domain.ProfileStore and domain.Journal.
type DB struct {
	db  *sql.DB
	log *slog.Logger
}

// Open creates or opens the SQLite database at dir/bachpan.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string, log *slog.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	dbPath := filepath.Join(dir, FileName)
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db, log: log.With("component", "sqlite")}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Profiles: identity, body details and cumulative rewards
		`CREATE TABLE IF NOT EXISTS profiles (
			key                TEXT PRIMARY KEY,
			name               TEXT NOT NULL,
			gender             TEXT NOT NULL DEFAULT '',
			age                INTEGER NOT NULL DEFAULT 0,
			weight             REAL NOT NULL DEFAULT 0,
			height             REAL NOT NULL DEFAULT 0,
			xp                 INTEGER NOT NULL DEFAULT 0,
			streak             INTEGER NOT NULL DEFAULT 0,
			longest_streak     INTEGER NOT NULL DEFAULT 0,
			last_completed_day TEXT NOT NULL DEFAULT '',
			created            TEXT NOT NULL DEFAULT '',
			schema_version     INTEGER NOT NULL DEFAULT 1,
			updated_at         INTEGER NOT NULL
		)`,

		// Highest tier reached per category
		`CREATE TABLE IF NOT EXISTS badges (
			profile_key TEXT NOT NULL REFERENCES profiles(key) ON DELETE CASCADE,
			category    TEXT NOT NULL,
			tier        TEXT NOT NULL,
			earned_on   TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (profile_key, category)
		)`,

		// Unlocked XP ladder rungs
		`CREATE TABLE IF NOT EXISTS xp_badges (
			profile_key TEXT NOT NULL REFERENCES profiles(key) ON DELETE CASCADE,
			tier        TEXT NOT NULL,
			earned_on   TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (profile_key, tier)
		)`,

		// One row per (profile, date); the record itself is a JSON document
		`CREATE TABLE IF NOT EXISTS day_records (
			profile_key TEXT NOT NULL REFERENCES profiles(key) ON DELETE CASCADE,
			day         TEXT NOT NULL,
			doc         TEXT NOT NULL,
			completed   BOOLEAN NOT NULL DEFAULT 0,
			PRIMARY KEY (profile_key, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_days_completed ON day_records(profile_key, completed)`,

		// Append-only XP journal
		`CREATE TABLE IF NOT EXISTS xp_events (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT NOT NULL UNIQUE,
			session     TEXT NOT NULL DEFAULT '',
			profile_key TEXT NOT NULL,
			day         TEXT NOT NULL,
			kind        TEXT NOT NULL,
			delta       INTEGER NOT NULL,
			xp_after    INTEGER NOT NULL,
			at          INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_profile ON xp_events(profile_key, seq)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
