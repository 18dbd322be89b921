// Package assistant answers questions about recent terminal output.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/voxsh/internal/application/transcript"
	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

const preamble = "You are a helpful assistant with terminal access. History:"

// MsgNotConfigured is returned when no completion provider is wired.
const MsgNotConfigured = "assistant not configured"

// Service builds transcript-aware prompts for the completion provider.
type Service struct {
	Provider   ports.CompletionProvider
	Transcript *transcript.Store
	Logger     ports.Logger
	MaxTokens  int
}

// BuildPrompt returns the preamble, the rendered transcript and the question joined by newlines.
func (s *Service) BuildPrompt(question string) string {
	history := ""
	if s.Transcript != nil {
		history = s.Transcript.Render()
	}
	return fmt.Sprintf("%s\n%s\nUser question: %s", preamble, history, question)
}

// Ask never returns an error: every failure becomes a readable diagnostic string.
func (s *Service) Ask(ctx context.Context, question string) string {
	if s.Provider == nil {
		return MsgNotConfigured
	}

	maxTokens := s.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxTokens
	}

	s.Logger.Debug("querying assistant", map[string]interface{}{
		"provider":        s.Provider.Name(),
		"transcript_size": s.transcriptLen(),
	})

	resp, err := s.Provider.Complete(ctx, ports.CompletionRequest{
		Prompt:    s.BuildPrompt(question),
		MaxTokens: maxTokens,
	})
	if err != nil {
		var missing *domain.MissingCredentialError
		if errors.As(err, &missing) {
			return missing.Error()
		}
		s.Logger.Warn("assistant request failed", map[string]interface{}{"error": err.Error()})
		return "assistant unavailable: " + err.Error()
	}
	return strings.TrimSpace(resp.Text)
}

func (s *Service) transcriptLen() int {
	if s.Transcript == nil {
		return 0
	}
	return s.Transcript.Len()
}
