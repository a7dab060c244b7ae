package internal

import (
	"errors"
	"fmt"
)

// ErrRequestPending signals that a chat request was attempted while
// another one is still in flight. At most one request may be pending.
var ErrRequestPending = errors.New("a chat request is already pending")

// FallbackReply is rendered when a request fails without a usable
// server-supplied message. It is UI-only and never persisted.
const FallbackReply = "Sorry, something went wrong. Please try again in a moment."

// StorageError represents errors accessing the session database
type StorageError struct {
	Key string
	Op  string // "open", "read", "write", "delete"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TransportError represents a failure to reach the backend at all
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the backend. Message
// carries the server-supplied "error" field when the body was parsable.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error [%d] %s: %s", e.Status, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("api error [%d] %s", e.Status, e.Endpoint)
}

// UserMessage returns the text shown in the fallback chat bubble: the
// server-supplied message when available, a generic apology otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackReply
}

// ExportError represents errors during transcript export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
