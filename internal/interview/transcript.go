package interview

import (
	"strings"

	"github.com/ashureev/founder-compass/internal/domain"
)

// maxRenderedEntries bounds the transcript handed to the generator so
// prompts stay a constant size in long interviews.
const maxRenderedEntries = 40

// RenderTranscript renders transcript entries as alternating "User:" /
// "Assistant:" lines, newest last, keeping only the most recent entries.
func RenderTranscript(entries []domain.TranscriptEntry) string {
	if len(entries) > maxRenderedEntries {
		entries = entries[len(entries)-maxRenderedEntries:]
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch e.Role {
		case domain.RoleAssistant:
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(e.Content)
	}
	return b.String()
}
