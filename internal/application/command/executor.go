// Package command runs literal shell commands on behalf of the dispatch loop.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/doeshing/voxsh/internal/application/transcript"
	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// Executor runs a command, records it in the transcript and echoes its output.
type Executor struct {
	Runner     ports.ShellRunner
	Transcript *transcript.Store
	History    ports.HistoryRepository
	Logger     ports.Logger
	Out        io.Writer
	SessionID  string
}

// Execute never fails from the caller's point of view: a failing command is
// just stderr text, and every run lands in the transcript.
func (e *Executor) Execute(ctx context.Context, command string) domain.ExecutionResult {
	command = strings.TrimSpace(command)
	if command == "" {
		return domain.ExecutionResult{}
	}

	e.Logger.Info("Running command", map[string]interface{}{"command": command})

	start := time.Now()
	result, err := e.Runner.Run(ctx, command)
	if err != nil {
		// The shell could not be started; keep the failure as context.
		result.Stderr = joinNonEmpty(result.Stderr, err.Error())
		if result.ExitCode == 0 {
			result.ExitCode = -1
		}
	}
	result.Command = command
	if result.DurationMS == 0 {
		result.DurationMS = time.Since(start).Milliseconds()
	}

	e.Transcript.Append(command, result.Stdout, result.Stderr)
	e.print(result)
	e.journal(result)
	return result
}

func (e *Executor) print(result domain.ExecutionResult) {
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	if result.Stdout != "" {
		fmt.Fprintln(out, result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprintln(out, result.Stderr)
	}
}

func (e *Executor) journal(result domain.ExecutionResult) {
	if e.History == nil {
		return
	}
	record := domain.HistoryRecord{
		Timestamp:       time.Now(),
		SessionID:       e.SessionID,
		Utterance:       result.Command,
		Command:         result.Command,
		Intent:          domain.IntentRunShell,
		ExitCode:        result.ExitCode,
		Success:         result.ExitCode == 0,
		ExecutionTimeMS: result.DurationMS,
	}
	if err := e.History.Save(record); err != nil {
		e.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}
