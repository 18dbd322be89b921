package dispatch

import (
	"strings"

	"github.com/doeshing/voxsh/internal/domain"
)

// Rule pairs an intent with the predicate that selects it.
type Rule struct {
	Intent domain.Intent
	Match  func(utterance string) bool
}

// Rules are evaluated top to bottom and the first match wins. Later rules are
// fallbacks for earlier ones, so the order is part of the behavior.
var Rules = []Rule{
	{Intent: domain.IntentNone, Match: func(u string) bool { return u == "" }},
	{Intent: domain.IntentQuit, Match: func(u string) bool { return u == "quit" || u == "exit" }},
	{Intent: domain.IntentInstallPackage, Match: func(u string) bool {
		return strings.Contains(u, "install") && strings.Contains(u, "openaicli")
	}},
	{Intent: domain.IntentOpenBrowser, Match: func(u string) bool { return strings.Contains(u, "open browser") }},
	{Intent: domain.IntentSendEmail, Match: func(u string) bool { return strings.HasPrefix(u, "send email") }},
	{Intent: domain.IntentAskAssistant, Match: func(u string) bool { return strings.Contains(u, "what is this error") }},
	{Intent: domain.IntentRunShell, Match: func(string) bool { return true }},
}

// Normalize lowercases and trims a raw utterance.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Classify maps a normalized utterance to its intent.
func Classify(utterance string) domain.Intent {
	for _, rule := range Rules {
		if rule.Match(utterance) {
			return rule.Intent
		}
	}
	return domain.IntentRunShell
}

// ParseEmailCommand splits "send email <to> <subject...>".
// ok is false when fewer than four tokens are present.
func ParseEmailCommand(utterance string) (to, subject string, ok bool) {
	parts := strings.Fields(utterance)
	if len(parts) < 4 {
		return "", "", false
	}
	return parts[2], strings.Join(parts[3:], " "), true
}
