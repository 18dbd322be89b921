// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the dispatch core and the
// collaborators it drives: speech recognition, the shell, the mail agent, the
// completion service and the system browser. Concrete adapters live in the
// infrastructure layer, so the application packages can be tested with stubs.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., ShellRunner, CompletionProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/voxsh/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.voxsh/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// InputCapture obtains one utterance from the user.
// An empty string with a nil error means nothing usable was heard.
type InputCapture interface {
	Capture(ctx context.Context) (string, error)
	Mode() string
}

// Recognizer turns one spoken utterance into text.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
	Available() bool
}

// ShellRunner runs a command string through the platform command interpreter.
// A non-zero exit status is reported in the result, not as an error.
type ShellRunner interface {
	Run(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// MailTransport delivers a structured message.
type MailTransport interface {
	Deliver(ctx context.Context, msg domain.EmailMessage) error
	Available() bool
}

// CompletionProvider wraps a large-language-model completion endpoint.
type CompletionProvider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

// CompletionRequest carries a fully rendered prompt and generation limits.
type CompletionRequest struct {
	Prompt    string
	MaxTokens int
}

// CompletionResponse holds the raw completion text.
type CompletionResponse struct {
	Text string
}

// BrowserOpener opens a URL in the user's default browser.
type BrowserOpener interface {
	Open(url string) error
	Enabled() bool
}

// HistoryRepository persists the execution journal.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
