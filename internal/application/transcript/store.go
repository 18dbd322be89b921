// Package transcript holds the session's record of executed shell commands.
package transcript

import (
	"strings"
	"sync"

	"github.com/doeshing/voxsh/internal/domain"
)

// Store is an append-only, in-memory log of command executions.
// It lives for the process and is never persisted or trimmed.
type Store struct {
	mu      sync.RWMutex
	entries []domain.TranscriptEntry
}

// NewStore returns an empty transcript.
func NewStore() *Store {
	return &Store{}
}

// Append adds one entry at the end.
func (s *Store) Append(command, stdout, stderr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, domain.TranscriptEntry{
		Command: command,
		Stdout:  stdout,
		Stderr:  stderr,
	})
}

// Render concatenates every entry's formatted text in insertion order.
func (s *Store) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b strings.Builder
	for _, entry := range s.entries {
		b.WriteString(entry.Format())
	}
	return b.String()
}

// Entries returns a copy of the log.
func (s *Store) Entries() []domain.TranscriptEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TranscriptEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
