// Package export writes chat transcripts in various formats.
package export

import (
	"fmt"
	"io"

	"github.com/courtside/jobchat/internal"
)

// Transcript is the exportable snapshot of one widget session
type Transcript struct {
	SessionID string          `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	StartedAt string          `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	Turns     []internal.Turn `json:"turns" yaml:"turns"`
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(transcript *Transcript, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: jsonl, md, yaml, json)", format)
	}
}
