package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// LocalExecutor runs commands on the host shell.
type LocalExecutor struct {
	shell string
}

// NewLocalExecutor builds a new executor, shell defaults to $SHELL then /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell}
}

// Shell reports the interpreter used for commands.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

// Run implements ports.ShellRunner. Only a failure to start the shell is an error;
// a non-zero exit is returned in the result.
func (e *LocalExecutor) Run(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Command:    command,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		result.ExitCode = -1
		return result, err
	}
	return result, nil
}

var _ ports.ShellRunner = (*LocalExecutor)(nil)
