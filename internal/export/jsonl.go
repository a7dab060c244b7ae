package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONLExporter exports transcripts in JSONL format (one turn per line)
type JSONLExporter struct{}

// Export exports a transcript to JSONL format
func (e *JSONLExporter) Export(transcript *Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, turn := range transcript.Turns {
		if err := enc.Encode(turn); err != nil {
			return fmt.Errorf("failed to encode turn: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
