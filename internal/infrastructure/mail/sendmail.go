package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// SendmailTransport pipes messages into the local mail agent (sendmail -t -oi).
type SendmailTransport struct {
	path string
	now  func() time.Time
}

// NewSendmailTransport builds a transport; path defaults to /usr/sbin/sendmail.
func NewSendmailTransport(path string) *SendmailTransport {
	if path == "" {
		path = domain.DefaultSendmailPath
	}
	return &SendmailTransport{path: path, now: time.Now}
}

// Path returns the mail agent binary.
func (t *SendmailTransport) Path() string {
	return t.path
}

// Available reports whether the mail agent binary exists and is executable.
func (t *SendmailTransport) Available() bool {
	info, err := os.Stat(t.path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode()&0o111 != 0
}

// Deliver implements ports.MailTransport.
func (t *SendmailTransport) Deliver(ctx context.Context, msg domain.EmailMessage) error {
	cmd := exec.CommandContext(ctx, t.path, "-t", "-oi")
	cmd.Stdin = bytes.NewReader(t.Render(msg))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return fmt.Errorf("%s: %w: %s", t.path, err, detail)
		}
		return fmt.Errorf("%s: %w", t.path, err)
	}
	return nil
}

// Render produces the RFC 5322 text handed to the mail agent.
func (t *SendmailTransport) Render(msg domain.EmailMessage) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", t.now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return b.Bytes()
}

var _ ports.MailTransport = (*SendmailTransport)(nil)
