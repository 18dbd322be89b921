package domain

import "time"

// Config mirrors ~/.voxsh/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Assistant           AssistantSettings `yaml:"assistant"`
	Speech              SpeechSettings    `yaml:"speech"`
	Mail                MailSettings      `yaml:"mail"`
	Browser             BrowserSettings   `yaml:"browser"`
	Execution           ExecutionSettings `yaml:"execution"`
	History             HistorySettings   `yaml:"history"`
}

// AssistantSettings configures the completion service used for error questions.
type AssistantSettings struct {
	Endpoint       string `yaml:"endpoint"`
	ModelID        string `yaml:"model_id"`
	AuthEnvVar     string `yaml:"auth_env_var"`
	OrgEnvVar      string `yaml:"org_env_var"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// Timeout returns the HTTP timeout for completion requests.
func (a AssistantSettings) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return DefaultHTTPClientTimeout
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// SpeechSettings configures the external speech-to-text command.
// The command is expected to record one utterance and print its text on stdout.
type SpeechSettings struct {
	Enabled bool     `yaml:"enabled"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// MailSettings configures the local outbound mail agent.
type MailSettings struct {
	SendmailPath string `yaml:"sendmail_path"`
	From         string `yaml:"from"`
	DefaultBody  string `yaml:"default_body"`
}

// BrowserSettings holds the page opened by the "open browser" intent.
type BrowserSettings struct {
	DefaultURL string `yaml:"default_url"`
}

// ExecutionSettings controls how commands run.
type ExecutionSettings struct {
	Shell          string `yaml:"shell"`
	InstallCommand string `yaml:"install_command"`
}

// HistorySettings controls the execution journal.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}
