package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database. WAL for better concurrency; foreign keys are
	// per-connection in SQLite, so they go in the DSN to cover every
	// pooled connection.
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Users table. google_id and email uniqueness is advisory: creation
		// flows check ExistsByEmail first, the schema does not enforce it.
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			google_id TEXT NOT NULL,
			email TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			picture TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// Activities table
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			goal TEXT NOT NULL DEFAULT '',
			predefined INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// Sessions table. No ON DELETE CASCADE: a user or activity with
		// logged sessions cannot be deleted out from under them.
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			activity_id TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			date DATETIME NOT NULL,
			rating TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (activity_id) REFERENCES activities(id)
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_users_google_id ON users(google_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_name ON activities(name)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_activity ON sessions(activity_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_date ON sessions(user_id, date)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return db.seedPredefinedActivities()
}

// seedPredefinedActivities inserts the global activity catalog once.
// User-created activities always have predefined = 0.
func (db *DB) seedPredefinedActivities() error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM activities WHERE predefined = 1`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check predefined activities: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := []struct {
		name  string
		color string
	}{
		{"Guitar Practice", "#FF5733"},
		{"Coding", "#4CAF50"},
	}

	for _, entry := range catalog {
		_, err := db.Exec(
			`INSERT INTO activities (id, name, color, predefined, created_at) VALUES (?, ?, ?, 1, ?)`,
			uuid.New(), entry.name, entry.color, time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to seed predefined activity %q: %w", entry.name, err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
