package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/voxsh/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		Assistant: domain.AssistantSettings{Endpoint: domain.DefaultEndpoint, MaxTokens: 150},
		Speech:    domain.SpeechSettings{Enabled: true, Command: "voxsh-listen"},
		Mail:      domain.MailSettings{From: "alice"},
		Browser:   domain.BrowserSettings{DefaultURL: domain.DefaultBrowserURL},
		Execution: domain.ExecutionSettings{InstallCommand: domain.DefaultInstallCommand},
		History:   domain.HistorySettings{Enabled: true, Path: "/tmp/history.db"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "bad endpoint scheme", mutate: func(c *domain.Config) { c.Assistant.Endpoint = "ftp://api" }, wantErr: "assistant.endpoint"},
		{name: "negative tokens", mutate: func(c *domain.Config) { c.Assistant.MaxTokens = -1 }, wantErr: "assistant.max_tokens"},
		{name: "browser without host", mutate: func(c *domain.Config) { c.Browser.DefaultURL = "https://" }, wantErr: "browser.default_url"},
		{name: "bad from address", mutate: func(c *domain.Config) { c.Mail.From = "a@@b" }, wantErr: "mail.from"},
		{name: "empty install", mutate: func(c *domain.Config) { c.Execution.InstallCommand = " " }, wantErr: "execution.install_command"},
		{name: "speech without command", mutate: func(c *domain.Config) { c.Speech.Command = "" }, wantErr: "speech.command"},
		{name: "speech disabled without command", mutate: func(c *domain.Config) { c.Speech = domain.SpeechSettings{} }},
		{name: "history without path", mutate: func(c *domain.Config) { c.History.Path = "" }, wantErr: "history.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
