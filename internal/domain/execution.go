package domain

// ExecutionResult wraps details from the shell runner.
// A non-zero ExitCode is data, not a failure.
type ExecutionResult struct {
	Command    string
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
}
