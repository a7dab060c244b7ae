package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/courtside/jobchat/internal"
)

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export exports a transcript to Markdown format
func (e *MarkdownExporter) Export(transcript *Transcript, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# Chat transcript\n\n")

	if transcript.SessionID != "" {
		_, _ = fmt.Fprintf(w, "**Session:** %s  \n", transcript.SessionID)
	}
	if transcript.StartedAt != "" {
		_, _ = fmt.Fprintf(w, "**Started:** %s  \n", transcript.StartedAt)
	}
	_, _ = fmt.Fprintf(w, "**Turns:** %d\n\n", len(transcript.Turns))

	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, turn := range transcript.Turns {
		label := "Assistant"
		if turn.Role == internal.RoleUser {
			label = "You"
		}

		content := escapeMarkdown(turn.Content)
		_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", label, content)

		if i < len(transcript.Turns)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown emphasis markers outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
