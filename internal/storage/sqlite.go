// Package storage provides SQLite-based persistence for the pong high score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection. Values live in a small
// namespaced key/value table of integers.
type Store struct {
	db *sql.DB
}

// Entry is a single stored value.
type Entry struct {
	Namespace string
	Key       string
	Value     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; SSH sessions share the store.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s != nil && s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get retrieves a value. Returns nil if the key was never written.
func (s *Store) Get(namespace, key string) (*Entry, error) {
	e := Entry{Namespace: namespace, Key: key}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT value, updated_at FROM kv WHERE namespace = ? AND key = ?",
		namespace, key,
	).Scan(&e.Value, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s/%s: %w", namespace, key, err)
	}

	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}

// Set writes a value, replacing any previous one.
func (s *Store) Set(namespace, key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (namespace, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (namespace, key)
		 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Raise writes value only if it is greater than the stored one (or nothing is
// stored yet). It returns the value held after the call.
func (s *Store) Raise(namespace, key string, value int) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO kv (namespace, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (namespace, key)
		 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE excluded.value > kv.value`,
		namespace, key, value,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot raise %s/%s: %w", namespace, key, err)
	}

	e, err := s.Get(namespace, key)
	if err != nil {
		return 0, err
	}
	if e == nil {
		return 0, fmt.Errorf("storage: %s/%s missing after write", namespace, key)
	}
	return e.Value, nil
}

// Delete removes a value. Deleting a missing key is not an error.
func (s *Store) Delete(namespace, key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE namespace = ? AND key = ?", namespace, key)
	if err != nil {
		return fmt.Errorf("storage: cannot delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
