package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/doeshing/voxsh/internal/application/dispatch"
)

// Spinner displays an animated spinner during long operations
type Spinner struct {
	frames   []string
	interval time.Duration
	writer   io.Writer
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSpinner creates a new spinner
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 80 * time.Millisecond,
		writer:   w,
	}
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})

	s.wg.Add(1)
	go func(stop <-chan struct{}) {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		idx := 0
		for {
			fmt.Fprintf(s.writer, "\r%s thinking", s.frames[idx%len(s.frames)])
			idx++
			select {
			case <-stop:
				// Clear the spinner line
				fmt.Fprintf(s.writer, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}(s.stopChan)
}

// Stop stops the spinner animation and waits for the line to be cleared.
// A stopped spinner can be started again.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
}

// spinningAssistant shows the spinner while the completion service is working.
type spinningAssistant struct {
	inner   dispatch.Assistant
	spinner *Spinner
}

func withSpinner(inner dispatch.Assistant, w io.Writer) dispatch.Assistant {
	if inner == nil {
		return nil
	}
	return &spinningAssistant{inner: inner, spinner: NewSpinner(w)}
}

func (a *spinningAssistant) Ask(ctx context.Context, question string) string {
	a.spinner.Start()
	defer a.spinner.Stop()
	return a.inner.Ask(ctx, question)
}
