// Package dispatch runs the capture, classify and act cycle.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// CommandRunner executes a literal shell command and records it.
type CommandRunner interface {
	Execute(ctx context.Context, command string) domain.ExecutionResult
}

// Mailer sends one message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Assistant answers a question; it reports failures in the returned text.
type Assistant interface {
	Ask(ctx context.Context, question string) string
}

// Settings holds the fixed targets of the non-shell intents.
type Settings struct {
	InstallCommand string
	BrowserURL     string
	EmailBody      string
}

// Loop is the dispatch state machine. It owns no collaborator state itself.
type Loop struct {
	Input     ports.InputCapture
	Commands  CommandRunner
	Mail      Mailer
	Assistant Assistant
	Browser   ports.BrowserOpener
	Logger    ports.Logger
	Out       io.Writer
	Settings  Settings

	state domain.LoopState
}

// State reports where the loop is in its lifecycle.
func (l *Loop) State() domain.LoopState {
	if l.state == "" {
		return domain.StateListening
	}
	return l.state
}

// Run blocks until the user quits, input ends or ctx is cancelled.
// Only cancellation produces a non-nil error.
func (l *Loop) Run(ctx context.Context) error {
	l.state = domain.StateListening
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := l.Input.Capture(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.Logger.Debug("input closed", nil)
				l.state = domain.StateTerminated
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			l.Logger.Error("capture failed", err, nil)
			continue
		}

		if !l.Step(ctx, raw) {
			return nil
		}
	}
}

// Step handles one utterance and reports whether the loop keeps listening.
func (l *Loop) Step(ctx context.Context, raw string) bool {
	utterance := Normalize(raw)
	intent := Classify(utterance)
	if intent != domain.IntentNone {
		l.Logger.Debug("classified utterance", map[string]interface{}{
			"utterance": utterance,
			"intent":    string(intent),
		})
	}

	if intent == domain.IntentQuit {
		l.state = domain.StateTerminated
		return false
	}
	if err := l.handle(ctx, intent, utterance); err != nil {
		l.Logger.Error("action failed", err, map[string]interface{}{"intent": string(intent)})
		fmt.Fprintf(l.out(), "error: %v\n", err)
	}
	return true
}

func (l *Loop) handle(ctx context.Context, intent domain.Intent, utterance string) error {
	switch intent {
	case domain.IntentNone:
		return nil
	case domain.IntentInstallPackage:
		l.Commands.Execute(ctx, valueOr(l.Settings.InstallCommand, domain.DefaultInstallCommand))
		return nil
	case domain.IntentOpenBrowser:
		return l.openBrowser()
	case domain.IntentSendEmail:
		return l.sendEmail(ctx, utterance)
	case domain.IntentAskAssistant:
		fmt.Fprintln(l.out(), l.Assistant.Ask(ctx, utterance))
		return nil
	default:
		l.Commands.Execute(ctx, utterance)
		return nil
	}
}

func (l *Loop) openBrowser() error {
	url := valueOr(l.Settings.BrowserURL, domain.DefaultBrowserURL)
	if l.Browser == nil || !l.Browser.Enabled() {
		return fmt.Errorf("open browser: no browser launcher available")
	}
	l.Logger.Info("Opening browser", map[string]interface{}{"url": url})
	if err := l.Browser.Open(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

func (l *Loop) sendEmail(ctx context.Context, utterance string) error {
	to, subject, ok := ParseEmailCommand(utterance)
	if !ok {
		// TODO: print a usage hint once the product decision on short "send email" commands lands.
		l.Logger.Debug("send email ignored: expected recipient and subject", map[string]interface{}{"utterance": utterance})
		return nil
	}
	if err := l.Mail.Send(ctx, to, subject, valueOr(l.Settings.EmailBody, domain.DefaultEmailBody)); err != nil {
		return err
	}
	fmt.Fprintf(l.out(), "Email sent to %s\n", to)
	return nil
}

func (l *Loop) out() io.Writer {
	if l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
