package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	configapp "github.com/doeshing/voxsh/internal/application/config"
	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// Service reports which collaborators are usable in this environment.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Recognizer     ports.Recognizer
	MailTransport  ports.MailTransport
	Browser        ports.BrowserOpener
	History        ports.HistoryRepository
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	}

	switch {
	case !cfg.Speech.Enabled:
		checks = append(checks, warn("Speech input", "disabled, typed input will be used"))
	case s.Recognizer == nil || !s.Recognizer.Available():
		checks = append(checks, warn("Speech input", fmt.Sprintf("%s not found on PATH, typed input will be used", cfg.Speech.Command)))
	default:
		checks = append(checks, ok("Speech input", cfg.Speech.Command))
	}

	if s.MailTransport != nil && s.MailTransport.Available() {
		checks = append(checks, ok("Mail agent", cfg.Mail.SendmailPath))
	} else {
		checks = append(checks, warn("Mail agent", fmt.Sprintf("%s not executable, send email will fail", cfg.Mail.SendmailPath)))
	}

	if s.Browser != nil && s.Browser.Enabled() {
		checks = append(checks, ok("Browser", "launcher found"))
	} else {
		checks = append(checks, warn("Browser", "no launcher found"))
	}

	if s.History != nil {
		checks = append(checks, ok("History journal", s.History.Path()))
	}

	checks = append(checks, apiCheck(cfg.Assistant))

	return domain.HealthReport{Checks: checks}, nil
}

func apiCheck(settings domain.AssistantSettings) domain.HealthCheck {
	if strings.Contains(settings.Endpoint, "11434") || strings.Contains(settings.Endpoint, "ollama") {
		return ok("API keys", "local endpoint, no key required")
	}
	if envMissing(settings.AuthEnvVar, domain.DefaultAuthEnv) {
		name := settings.AuthEnvVar
		if name == "" {
			name = domain.DefaultAuthEnv
		}
		return warn("API keys", name+" missing")
	}
	return ok("API keys", "detected for configured assistant")
}

func envMissing(primary, fallback string) bool {
	if primary != "" && os.Getenv(primary) != "" {
		return false
	}
	if fallback != "" && os.Getenv(fallback) != "" {
		return false
	}
	return true
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
