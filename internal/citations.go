package internal

import "regexp"

// citationPattern matches the inline source annotations the assistant
// embeds in replies, e.g. 【4:0†source】. They reference the backend's
// vector store and mean nothing to the reader, so they are stripped
// before display.
var citationPattern = regexp.MustCompile(`【[^】]*】`)

// StripCitations removes all citation annotations from reply text,
// leaving the surrounding text untouched. Stripping is idempotent.
func StripCitations(text string) string {
	return citationPattern.ReplaceAllString(text, "")
}
