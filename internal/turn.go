package internal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role identifies the speaker of a turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn represents one message in the conversation
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserTurn creates a user turn from raw input. Leading and trailing
// whitespace is trimmed; an empty result is reported as invalid.
func NewUserTurn(content string) (Turn, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Turn{}, false
	}
	return Turn{Role: RoleUser, Content: content}, true
}

// NewAssistantTurn creates an assistant turn. Assistant content may be
// empty here; callers drop empty replies before appending.
func NewAssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// Valid reports whether the turn carries a known role
func (t Turn) Valid() bool {
	return t.Role == RoleUser || t.Role == RoleAssistant
}

// EncodeTranscript serializes a transcript to its persisted JSON form
func EncodeTranscript(turns []Turn) ([]byte, error) {
	if turns == nil {
		turns = []Turn{}
	}
	data, err := json.Marshal(turns)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript: %w", err)
	}
	return data, nil
}

// DecodeTranscript parses a persisted transcript. Turns with unknown
// roles or empty content are skipped rather than failing the whole
// transcript, so a partially damaged payload still restores.
func DecodeTranscript(data []byte) ([]Turn, error) {
	var raw []Turn
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse transcript JSON: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, t := range raw {
		if !t.Valid() || t.Content == "" {
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}
