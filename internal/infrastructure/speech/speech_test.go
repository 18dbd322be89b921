package speech

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/pkg/logger"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listen")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestCommandRecognizerReturnsText(t *testing.T) {
	rec := NewCommandRecognizer(writeScript(t, "echo '  List Files '\n"), nil)
	require.True(t, rec.Available())

	text, err := rec.Recognize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "List Files", text)
}

func TestCommandRecognizerPassesArgs(t *testing.T) {
	rec := NewCommandRecognizer(writeScript(t, "echo \"$1-$2\"\n"), []string{"--lang", "en"})

	text, err := rec.Recognize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "--lang-en", text)
}

func TestCommandRecognizerUnintelligible(t *testing.T) {
	rec := NewCommandRecognizer(writeScript(t, "exit 0\n"), nil)

	_, err := rec.Recognize(context.Background())
	assert.ErrorIs(t, err, ErrUnintelligible)
}

func TestCommandRecognizerServiceError(t *testing.T) {
	rec := NewCommandRecognizer(writeScript(t, "echo 'api quota exceeded' 1>&2\nexit 1\n"), nil)

	_, err := rec.Recognize(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "api quota exceeded")
}

func TestCommandRecognizerAvailability(t *testing.T) {
	assert.False(t, NewCommandRecognizer("", nil).Available())
	assert.False(t, NewCommandRecognizer("voxsh-definitely-missing-binary", nil).Available())
}

func TestSpeechCaptureAbsorbsRecognitionFailures(t *testing.T) {
	for _, err := range []error{ErrUnintelligible, ErrServiceUnavailable} {
		capture := &SpeechCapture{Recognizer: &stubRecognizer{err: err}, Logger: logger.NewNop()}
		text, captureErr := capture.Capture(context.Background())
		assert.NoError(t, captureErr)
		assert.Empty(t, text)
	}

	capture := &SpeechCapture{Recognizer: &stubRecognizer{text: "open browser"}, Logger: logger.NewNop()}
	text, err := capture.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "open browser", text)
	assert.Equal(t, ModeSpeech, capture.Mode())
}

func TestSpeechCaptureCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	capture := &SpeechCapture{Recognizer: &stubRecognizer{err: errors.New("killed")}, Logger: logger.NewNop()}

	_, err := capture.Capture(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextFallbackReadsLines(t *testing.T) {
	var out bytes.Buffer
	capture := NewTextFallbackCapture(strings.NewReader("ls -la\r\n\nquit"), &out)

	for _, want := range []string{"ls -la", "", "quit"} {
		got, err := capture.Capture(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := capture.Capture(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, out.String(), "no prompt for non-terminal input")
	assert.Equal(t, ModeText, capture.Mode())
}

func TestTextFallbackPromptsWhenInteractive(t *testing.T) {
	var out bytes.Buffer
	capture := NewTextFallbackCapture(strings.NewReader("pwd\n"), &out)
	capture.interactive = true

	got, err := capture.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pwd", got)
	assert.Equal(t, textPrompt, out.String())
}

func TestTextFallbackCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	capture := NewTextFallbackCapture(pr, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := capture.Capture(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	go func() { _, _ = pw.Write([]byte("late line\n")) }()
	got, err := capture.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late line", got)
}

func TestSelect(t *testing.T) {
	fallback := NewTextFallbackCapture(strings.NewReader(""), &bytes.Buffer{})
	log := logger.NewNop()
	enabled := domain.SpeechSettings{Enabled: true, Command: "listen"}

	assert.Equal(t, ModeSpeech, Select(enabled, false, &stubRecognizer{available: true}, fallback, log).Mode())
	assert.Equal(t, ModeText, Select(enabled, true, &stubRecognizer{available: true}, fallback, log).Mode())
	assert.Equal(t, ModeText, Select(enabled, false, &stubRecognizer{available: false}, fallback, log).Mode())
	assert.Equal(t, ModeText, Select(enabled, false, nil, fallback, log).Mode())
	assert.Equal(t, ModeText, Select(domain.SpeechSettings{}, false, &stubRecognizer{available: true}, fallback, log).Mode())
}

type stubRecognizer struct {
	text      string
	err       error
	available bool
}

func (s *stubRecognizer) Recognize(context.Context) (string, error) { return s.text, s.err }
func (s *stubRecognizer) Available() bool                          { return s.available }
