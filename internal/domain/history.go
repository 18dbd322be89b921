package domain

import "time"

// HistoryRecord is one row of the execution journal.
// The journal is an audit trail only; it never feeds the in-memory transcript.
type HistoryRecord struct {
	Timestamp       time.Time `json:"timestamp"`
	SessionID       string    `json:"session_id"`
	Utterance       string    `json:"utterance"`
	Command         string    `json:"command"`
	Intent          Intent    `json:"intent"`
	ExitCode        int       `json:"exit_code"`
	Success         bool      `json:"success"`
	ExecutionTimeMS int64     `json:"execution_time_ms"`
}
