// Package mail composes outgoing messages and hands them to the mail transport.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

const (
	defaultSubject = "(no subject)"
	defaultBody    = "Sent from voxsh"
	fallbackFrom   = "bot"
)

// ErrInvalidRecipient is returned when the recipient is empty or not address-like.
var ErrInvalidRecipient = errors.New("invalid recipient address")

// TransportError reports that the mail agent was unavailable or rejected the message.
type TransportError struct {
	To  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mail transport: send to %s: %v", e.To, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Sender builds messages and delivers them synchronously.
type Sender struct {
	Transport ports.MailTransport
	Logger    ports.Logger
	// From overrides the sender identity; when empty $USER is used.
	From string
}

// Send delivers one message, blocking until the transport returns.
func (s *Sender) Send(ctx context.Context, to, subject, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrInvalidRecipient
	}
	if _, err := mail.ParseAddress(to); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, to)
	}

	msg := domain.EmailMessage{
		To:      to,
		From:    s.from(),
		Subject: valueOr(strings.TrimSpace(subject), defaultSubject),
		Body:    valueOr(body, defaultBody),
	}

	if s.Transport == nil || !s.Transport.Available() {
		return &TransportError{To: to, Err: errors.New("mail agent not available")}
	}

	s.Logger.Info("Sending email", map[string]interface{}{
		"to":      msg.To,
		"from":    msg.From,
		"subject": msg.Subject,
	})
	if err := s.Transport.Deliver(ctx, msg); err != nil {
		return &TransportError{To: to, Err: err}
	}
	return nil
}

func (s *Sender) from() string {
	if s.From != "" {
		return s.From
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return fallbackFrom
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
