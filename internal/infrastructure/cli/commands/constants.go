package commands

import "github.com/doeshing/voxsh/internal/domain"

// History display defaults
const (
	DefaultHistoryLimit = domain.DefaultHistoryLimit
	TimestampFormat     = "2006-01-02 15:04:05"
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable (history.enabled is false)"
)

// Success messages
const (
	MsgNoHistoryRecorded = "No history recorded yet."
	MsgHistoryCleared    = "History cleared."
)
