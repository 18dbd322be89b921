package speech

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

const (
	ModeSpeech = "speech"
	ModeText   = "text"

	textPrompt = "command> "
)

// SpeechCapture reads utterances from a recognizer. Recognition failures are
// logged and reported as "nothing heard" so the caller simply listens again.
type SpeechCapture struct {
	Recognizer ports.Recognizer
	Logger     ports.Logger
}

// Mode implements ports.InputCapture.
func (c *SpeechCapture) Mode() string { return ModeSpeech }

// Capture implements ports.InputCapture.
func (c *SpeechCapture) Capture(ctx context.Context) (string, error) {
	c.Logger.Info("Listening...", nil)
	text, err := c.Recognizer.Recognize(ctx)
	switch {
	case err == nil:
		c.Logger.Info("Heard", map[string]interface{}{"text": text})
		return text, nil
	case ctx.Err() != nil:
		return "", ctx.Err()
	case errors.Is(err, ErrUnintelligible):
		c.Logger.Warn("Could not understand audio", nil)
		return "", nil
	default:
		c.Logger.Error("Speech recognition error", err, nil)
		return "", nil
	}
}

type lineResult struct {
	line string
	err  error
}

// TextFallbackCapture reads one typed line per utterance.
type TextFallbackCapture struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	pending     chan lineResult
}

// NewTextFallbackCapture reads from in and prompts on out. A nil in means
// stdin, and the prompt is only shown when the input is a terminal.
func NewTextFallbackCapture(in io.Reader, out io.Writer) *TextFallbackCapture {
	if in == nil {
		in = os.Stdin
	}
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	if out == nil {
		out = os.Stdout
	}
	return &TextFallbackCapture{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Mode implements ports.InputCapture.
func (c *TextFallbackCapture) Mode() string { return ModeText }

// Capture returns io.EOF once input is closed and nothing is left to read.
// The read runs in the background so cancellation is not blocked by stdin;
// an abandoned read is picked up by the next call.
func (c *TextFallbackCapture) Capture(ctx context.Context) (string, error) {
	if c.pending == nil {
		if c.interactive {
			fmt.Fprint(c.out, textPrompt)
		}
		c.pending = make(chan lineResult, 1)
		go func(ch chan<- lineResult) {
			line, err := c.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}(c.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		line := strings.TrimRight(res.line, "\r\n")
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && line != "" {
				return line, nil
			}
			return "", res.err
		}
		return line, nil
	}
}

// Select picks the capture variant for this environment: speech when enabled
// and the recognizer is installed, otherwise the typed fallback.
func Select(cfg domain.SpeechSettings, forceText bool, recognizer ports.Recognizer, fallback ports.InputCapture, log ports.Logger) ports.InputCapture {
	switch {
	case forceText:
		log.Debug("text input forced", nil)
	case !cfg.Enabled:
		log.Debug("speech input disabled in config", nil)
	case recognizer == nil || !recognizer.Available():
		log.Warn("speech recognizer not available, falling back to typed input", map[string]interface{}{
			"command": cfg.Command,
		})
	default:
		return &SpeechCapture{Recognizer: recognizer, Logger: log}
	}
	return fallback
}

var (
	_ ports.InputCapture = (*SpeechCapture)(nil)
	_ ports.InputCapture = (*TextFallbackCapture)(nil)
)
