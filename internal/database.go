package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SessionDB is the session-scoped key/value database backing the
// session store. It plays the role the browser's sessionStorage plays
// for the embedded widget: a handful of string keys, JSON values.
type SessionDB struct {
	db *sql.DB
}

// OpenSessionDB opens (and if needed creates) the session database at
// the given path, creating parent directories along the way.
func OpenSessionDB(path string) (*SessionDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("session database ping failed: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS widgetState (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create widgetState table: %w", err)
	}

	return &SessionDB{db: db}, nil
}

// Get returns the value stored under key. Missing keys return ok=false
// without an error; only real database failures produce one.
func (s *SessionDB) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM widgetState WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Key: key, Op: "read", Err: err}
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value
func (s *SessionDB) Put(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO widgetState (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StorageError{Key: key, Op: "write", Err: err}
	}
	return nil
}

// Delete removes key if present. Deleting a missing key is not an error.
func (s *SessionDB) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM widgetState WHERE key = ?", key); err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}
	return nil
}

// Close closes the underlying database
func (s *SessionDB) Close() error {
	return s.db.Close()
}
