// Package testutil provides shared helpers for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/courtside/jobchat/internal"
)

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "jobchat-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

// SeedSessionDB creates a session database at path with the given turns
// persisted, the way a finished chat session leaves it behind
func SeedSessionDB(t *testing.T, path string, turns []internal.Turn) {
	t.Helper()

	db, err := internal.OpenSessionDB(path)
	if err != nil {
		t.Fatalf("Failed to open session database: %v", err)
	}
	defer func() { _ = db.Close() }()

	store := internal.NewSessionStore(db)
	store.Reset()
	for _, turn := range turns {
		store.Append(turn)
	}
}

// ChatBackend starts a fake backend that answers /api/chat with the
// given reply. Callers close the returned server.
func ChatBackend(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"response": reply})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// FailingBackend starts a fake backend that fails every request with
// the given status and error message
func FailingBackend(t *testing.T, status int, message string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// SessionDBPath returns a path for a fresh session database inside a
// temporary directory
func SessionDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(CreateTempDir(t), "session.db")
}
