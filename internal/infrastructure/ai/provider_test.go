package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

func TestCompleteMissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	provider := NewProvider(domain.AssistantSettings{})

	_, err := provider.Complete(context.Background(), ports.CompletionRequest{Prompt: "hi"})

	var missing *domain.MissingCredentialError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "OPENAI_API_KEY not set", err.Error())
}

func TestCompleteCustomCredentialVar(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TEAM_LLM_KEY", "")
	provider := NewProvider(domain.AssistantSettings{AuthEnvVar: "TEAM_LLM_KEY"})

	_, err := provider.Complete(context.Background(), ports.CompletionRequest{Prompt: "hi"})
	assert.EqualError(t, err, "TEAM_LLM_KEY not set")
}

func TestCompleteSendsChatRequest(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_ORG_ID", "")

	var got chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  missing semicolon \n"}}]}`))
	}))
	defer server.Close()

	provider := NewProvider(domain.AssistantSettings{Endpoint: server.URL, ModelID: "gpt-test"})
	resp, err := provider.Complete(context.Background(), ports.CompletionRequest{Prompt: "why?", MaxTokens: 150})
	require.NoError(t, err)

	assert.Equal(t, "missing semicolon", resp.Text)
	assert.Equal(t, "gpt-test", got.Model)
	assert.Equal(t, 150, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, chatMessage{Role: "user", Content: "why?"}, got.Messages[0])
	assert.Equal(t, "openai", provider.Name())
}

func TestCompleteHTTPError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	provider := NewProvider(domain.AssistantSettings{Endpoint: server.URL})
	_, err := provider.Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOllamaNeedsNoCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	provider := NewProvider(domain.AssistantSettings{Endpoint: server.URL + "/ollama/v1/chat/completions"})
	resp, err := provider.Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, "ollama", provider.Name())
}

func TestInferProviderKind(t *testing.T) {
	assert.Equal(t, providerOpenAI, inferProviderKind("https://api.openai.com/v1/chat/completions"))
	assert.Equal(t, providerOllama, inferProviderKind("http://localhost:11434/v1/chat/completions"))
	assert.Equal(t, providerOpenAI, inferProviderKind(""))
}
