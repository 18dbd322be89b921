package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout is the timeout for HTTP client requests
	DefaultHTTPClientTimeout = 60 * time.Second
)

// Assistant defaults
const (
	// DefaultMaxTokens bounds the completion length for error questions
	DefaultMaxTokens = 150
	DefaultModelID   = "gpt-4o-mini"
	DefaultEndpoint  = "https://api.openai.com/v1/chat/completions"
	DefaultAuthEnv   = "OPENAI_API_KEY"
	DefaultOrgEnv    = "OPENAI_ORG_ID"
)

// Dispatch defaults
const (
	DefaultInstallCommand = "pip install openaicli"
	DefaultBrowserURL     = "https://www.google.com"
	DefaultEmailBody      = "Sent from AI terminal"
	DefaultSendmailPath   = "/usr/sbin/sendmail"
	DefaultSpeechCommand  = "voxsh-listen"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
