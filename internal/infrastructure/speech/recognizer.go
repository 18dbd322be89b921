// Package speech provides the two input capture variants: a speech-to-text
// command and a typed-line fallback.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/voxsh/internal/ports"
)

var (
	// ErrUnintelligible means audio was captured but no text came out of it.
	ErrUnintelligible = errors.New("speech not understood")
	// ErrServiceUnavailable means the recognizer could not be reached or failed.
	ErrServiceUnavailable = errors.New("speech recognition unavailable")
)

// CommandRecognizer delegates recognition to an external program that records
// one utterance and prints the transcription on stdout.
type CommandRecognizer struct {
	command  string
	args     []string
	lookPath func(string) (string, error)
}

// NewCommandRecognizer builds a recognizer around command.
func NewCommandRecognizer(command string, args []string) *CommandRecognizer {
	return &CommandRecognizer{
		command:  command,
		args:     append([]string(nil), args...),
		lookPath: exec.LookPath,
	}
}

// Command returns the configured program name.
func (r *CommandRecognizer) Command() string {
	return r.command
}

// Available reports whether the program resolves on PATH.
func (r *CommandRecognizer) Available() bool {
	if r.command == "" {
		return false
	}
	_, err := r.lookPath(r.command)
	return err == nil
}

// Recognize blocks until the program exits.
func (r *CommandRecognizer) Recognize(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, r.command, r.args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return "", fmt.Errorf("%w: %s: %v: %s", ErrServiceUnavailable, r.command, err, detail)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrServiceUnavailable, r.command, err)
	}
	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", ErrUnintelligible
	}
	return text, nil
}

var _ ports.Recognizer = (*CommandRecognizer)(nil)
