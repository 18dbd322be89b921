package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// chatProvider talks to an OpenAI-compatible chat completions endpoint.
// The prompt is sent as a single user message.
type chatProvider struct {
	name        string
	settings    domain.AssistantSettings
	httpClient  *http.Client
	requireAuth bool
}

func (p *chatProvider) Name() string {
	return p.name
}

func (p *chatProvider) Complete(ctx context.Context, req ports.CompletionRequest) (ports.CompletionResponse, error) {
	authVar := valueOrDefault(p.settings.AuthEnvVar, domain.DefaultAuthEnv)
	apiKey := resolveEnv(p.settings.AuthEnvVar, domain.DefaultAuthEnv)
	if p.requireAuth && apiKey == "" {
		return ports.CompletionResponse{}, &domain.MissingCredentialError{EnvVar: authVar}
	}

	payload := chatCompletionRequest{
		Model:     valueOrDefault(p.settings.ModelID, domain.DefaultModelID),
		MaxTokens: valueOrDefaultInt(req.MaxTokens, valueOrDefaultInt(p.settings.MaxTokens, domain.DefaultMaxTokens)),
		Messages:  []chatMessage{{Role: "user", Content: req.Prompt}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.CompletionResponse{}, err
	}

	endpoint := valueOrDefault(p.settings.Endpoint, domain.DefaultEndpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.CompletionResponse{}, err
	}
	httpReq.Header.Set("content-type", "application/json")
	if apiKey != "" {
		httpReq.Header.Set("authorization", "Bearer "+apiKey)
	}
	if org := resolveEnv(p.settings.OrgEnvVar, domain.DefaultOrgEnv); org != "" {
		httpReq.Header.Set("OpenAI-Organization", org)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return ports.CompletionResponse{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.CompletionResponse{}, err
	}

	var decoded chatCompletionResponse
	decodeErr := json.Unmarshal(raw, &decoded)
	if resp.StatusCode >= 400 {
		if decodeErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			return ports.CompletionResponse{}, fmt.Errorf("%s: %s: %s", p.name, resp.Status, decoded.Error.Message)
		}
		return ports.CompletionResponse{}, fmt.Errorf("%s: %s", p.name, resp.Status)
	}
	if decodeErr != nil {
		return ports.CompletionResponse{}, fmt.Errorf("%s: decode response: %w", p.name, decodeErr)
	}
	return ports.CompletionResponse{Text: strings.TrimSpace(decoded.FirstMessage())}, nil
}

var _ ports.CompletionProvider = (*chatProvider)(nil)
