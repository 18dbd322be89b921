package ai

import (
	"net/http"
	"strings"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// NewProvider builds the completion provider described by settings.
// Local Ollama endpoints do not need a credential; everything else does.
func NewProvider(settings domain.AssistantSettings) ports.CompletionProvider {
	client := &http.Client{Timeout: settings.Timeout()}
	switch inferProviderKind(settings.Endpoint) {
	case providerOllama:
		return &chatProvider{name: "ollama", settings: settings, httpClient: client}
	default:
		return &chatProvider{name: "openai", settings: settings, httpClient: client, requireAuth: true}
	}
}

type providerKind string

const (
	providerOpenAI providerKind = "openai"
	providerOllama providerKind = "ollama"
)

func inferProviderKind(endpoint string) providerKind {
	switch {
	case strings.Contains(endpoint, "11434"), strings.Contains(endpoint, "ollama"):
		return providerOllama
	default:
		return providerOpenAI
	}
}
