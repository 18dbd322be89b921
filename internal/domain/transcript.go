package domain

import "fmt"

// TranscriptEntry records one executed shell command and what it printed.
// Entries are values; once appended to a transcript they are never changed.
type TranscriptEntry struct {
	Command string
	Stdout  string
	Stderr  string
}

// Format renders the entry the way it appears in assistant prompts.
func (e TranscriptEntry) Format() string {
	return fmt.Sprintf("$ %s\n%s\n%s\n", e.Command, e.Stdout, e.Stderr)
}
