package domain

// Intent is the action category an utterance classifies into.
type Intent string

const (
	IntentNone           Intent = "none"
	IntentQuit           Intent = "quit"
	IntentInstallPackage Intent = "install_package"
	IntentOpenBrowser    Intent = "open_browser"
	IntentSendEmail      Intent = "send_email"
	IntentAskAssistant   Intent = "ask_assistant"
	IntentRunShell       Intent = "run_shell"
)

// LoopState is the dispatch loop's position in its two-state lifecycle.
type LoopState string

const (
	StateListening  LoopState = "listening"
	StateTerminated LoopState = "terminated"
)
