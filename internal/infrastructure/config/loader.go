package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/pkg/filesystem"
	"github.com/doeshing/voxsh/internal/ports"
)

// FileLoader loads YAML configuration from ~/.voxsh/config.yaml (overridable via VOXSH_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created with defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path resolves the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("VOXSH_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.StateDir(), "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Assistant: domain.AssistantSettings{
			Endpoint:       domain.DefaultEndpoint,
			ModelID:        domain.DefaultModelID,
			AuthEnvVar:     domain.DefaultAuthEnv,
			OrgEnvVar:      domain.DefaultOrgEnv,
			MaxTokens:      domain.DefaultMaxTokens,
			TimeoutSeconds: int(domain.DefaultHTTPClientTimeout.Seconds()),
		},
		Speech: domain.SpeechSettings{
			Enabled: true,
			Command: domain.DefaultSpeechCommand,
		},
		Mail: domain.MailSettings{
			SendmailPath: domain.DefaultSendmailPath,
			DefaultBody:  domain.DefaultEmailBody,
		},
		Browser: domain.BrowserSettings{
			DefaultURL: domain.DefaultBrowserURL,
		},
		Execution: domain.ExecutionSettings{
			Shell:          "auto",
			InstallCommand: domain.DefaultInstallCommand,
		},
		History: domain.HistorySettings{
			Enabled: true,
			Path:    filepath.Join(filesystem.StateDir(), "history.db"),
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	defaults := DefaultConfig()
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = defaults.ConfigFormatVersion
	}
	if cfg.Assistant.Endpoint == "" {
		cfg.Assistant.Endpoint = defaults.Assistant.Endpoint
	}
	if cfg.Assistant.ModelID == "" {
		cfg.Assistant.ModelID = defaults.Assistant.ModelID
	}
	if cfg.Assistant.AuthEnvVar == "" {
		cfg.Assistant.AuthEnvVar = defaults.Assistant.AuthEnvVar
	}
	if cfg.Assistant.MaxTokens == 0 {
		cfg.Assistant.MaxTokens = defaults.Assistant.MaxTokens
	}
	if cfg.Assistant.TimeoutSeconds == 0 {
		cfg.Assistant.TimeoutSeconds = defaults.Assistant.TimeoutSeconds
	}
	if cfg.Speech.Command == "" {
		cfg.Speech.Command = defaults.Speech.Command
	}
	if cfg.Mail.SendmailPath == "" {
		cfg.Mail.SendmailPath = defaults.Mail.SendmailPath
	}
	if cfg.Mail.DefaultBody == "" {
		cfg.Mail.DefaultBody = defaults.Mail.DefaultBody
	}
	if cfg.Browser.DefaultURL == "" {
		cfg.Browser.DefaultURL = defaults.Browser.DefaultURL
	}
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = defaults.Execution.Shell
	}
	if cfg.Execution.InstallCommand == "" {
		cfg.Execution.InstallCommand = defaults.Execution.InstallCommand
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaults.History.Path
	} else {
		cfg.History.Path = expandPath(cfg.History.Path)
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
