package internal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxHistory bounds the transcript. Once exceeded, the oldest turns are
// dropped so the most recent MaxHistory turns are retained.
const MaxHistory = 40

const (
	transcriptKey = "transcript"
	sessionKey    = "session"
)

// KV is the session-scoped key/value storage consumed by the store.
// *SessionDB satisfies it; tests substitute in-memory and failing fakes.
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Delete(key string) error
}

// SessionInfo identifies one widget session in the session database
type SessionInfo struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
}

// SessionStore is the single source of truth for the transcript. It
// owns the in-memory turns and mirrors every mutation to the session
// database. Persistence is best-effort: storage failures are logged
// and swallowed, and the store degrades to memory-only behavior.
type SessionStore struct {
	kv    KV
	turns []Turn
}

// NewSessionStore creates a store backed by kv. A nil kv yields a
// purely in-memory store.
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Append adds a turn to the end of the transcript, drops the oldest
// turns if MaxHistory is exceeded, and persists the result. Turns with
// unknown roles are ignored.
func (s *SessionStore) Append(t Turn) {
	if !t.Valid() {
		return
	}
	s.turns = append(s.turns, t)
	if len(s.turns) > MaxHistory {
		s.turns = s.turns[len(s.turns)-MaxHistory:]
	}
	s.persist()
}

// Turns returns a copy of the current transcript
func (s *SessionStore) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns in the transcript
func (s *SessionStore) Len() int {
	return len(s.turns)
}

// Restore replaces the in-memory transcript with the persisted copy.
// Absent or corrupt data is equivalent to an empty transcript; Restore
// never fails outward. It returns the number of turns restored.
func (s *SessionStore) Restore() int {
	s.turns = nil
	if s.kv == nil {
		return 0
	}

	value, ok, err := s.kv.Get(transcriptKey)
	if err != nil {
		LogDebug("transcript restore skipped: %v", err)
		return 0
	}
	if !ok {
		return 0
	}

	turns, err := DecodeTranscript([]byte(value))
	if err != nil {
		LogDebug("discarding corrupt persisted transcript: %v", err)
		return 0
	}
	if len(turns) > MaxHistory {
		turns = turns[len(turns)-MaxHistory:]
	}
	s.turns = turns
	return len(turns)
}

// Clear empties the transcript and removes the persisted copy
func (s *SessionStore) Clear() {
	s.turns = nil
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(transcriptKey); err != nil {
		LogDebug("transcript delete skipped: %v", err)
	}
}

// Reset discards any persisted transcript and records a fresh session
// identity. Every widget launch starts from an empty transcript; the
// Restore path stays available for explicit reattachment.
func (s *SessionStore) Reset() SessionInfo {
	s.Clear()

	info := SessionInfo{
		ID:        uuid.NewString(),
		StartedAt: time.Now().Format(time.RFC3339),
	}
	if s.kv != nil {
		if data, err := json.Marshal(info); err == nil {
			if err := s.kv.Put(sessionKey, string(data)); err != nil {
				LogDebug("session info persist skipped: %v", err)
			}
		}
	}
	return info
}

// Session returns the recorded session identity, if any
func (s *SessionStore) Session() (SessionInfo, bool) {
	if s.kv == nil {
		return SessionInfo{}, false
	}
	value, ok, err := s.kv.Get(sessionKey)
	if err != nil || !ok {
		return SessionInfo{}, false
	}
	var info SessionInfo
	if err := json.Unmarshal([]byte(value), &info); err != nil {
		return SessionInfo{}, false
	}
	return info, true
}

// persist mirrors the transcript to the session database. Failures are
// logged at debug level and never surfaced: the conversation goes on.
func (s *SessionStore) persist() {
	if s.kv == nil {
		return
	}
	data, err := EncodeTranscript(s.turns)
	if err != nil {
		LogDebug("transcript encode skipped: %v", err)
		return
	}
	if err := s.kv.Put(transcriptKey, string(data)); err != nil {
		LogDebug("transcript persist skipped: %v", err)
	}
}
