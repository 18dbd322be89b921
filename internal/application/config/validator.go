package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/doeshing/voxsh/internal/domain"
)

// Validate ensures config values are usable before the loop starts.
func Validate(cfg domain.Config) error {
	if err := validateAssistant(cfg.Assistant); err != nil {
		return err
	}
	if err := validateBrowser(cfg.Browser); err != nil {
		return err
	}
	if err := validateMail(cfg.Mail); err != nil {
		return err
	}
	if err := validateExecution(cfg.Execution); err != nil {
		return err
	}
	if cfg.Speech.Enabled && strings.TrimSpace(cfg.Speech.Command) == "" {
		return fmt.Errorf("speech.command must be set when speech.enabled is true")
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		return fmt.Errorf("history.path must be set when history.enabled is true")
	}
	return nil
}

func validateAssistant(a domain.AssistantSettings) error {
	if a.Endpoint != "" {
		if err := validateHTTPURL(a.Endpoint); err != nil {
			return fmt.Errorf("assistant.endpoint invalid: %w", err)
		}
	}
	if a.MaxTokens < 0 {
		return fmt.Errorf("assistant.max_tokens must be >= 0")
	}
	if a.TimeoutSeconds < 0 {
		return fmt.Errorf("assistant.timeout must be >= 0")
	}
	return nil
}

func validateBrowser(b domain.BrowserSettings) error {
	if b.DefaultURL == "" {
		return nil
	}
	if err := validateHTTPURL(b.DefaultURL); err != nil {
		return fmt.Errorf("browser.default_url invalid: %w", err)
	}
	return nil
}

func validateMail(m domain.MailSettings) error {
	if m.From == "" {
		return nil
	}
	// A bare local user name is accepted; sendmail qualifies it.
	if !strings.Contains(m.From, "@") {
		return nil
	}
	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("mail.from invalid: %w", err)
	}
	return nil
}

func validateExecution(e domain.ExecutionSettings) error {
	if strings.TrimSpace(e.InstallCommand) == "" {
		return fmt.Errorf("execution.install_command must not be empty")
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
