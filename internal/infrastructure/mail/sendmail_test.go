package mail

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/voxsh/internal/domain"
)

func TestRenderHeadersAndBody(t *testing.T) {
	transport := NewSendmailTransport("")
	transport.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	raw := string(transport.Render(domain.EmailMessage{
		To:      "bob@example.com",
		From:    "alice",
		Subject: "hello world",
		Body:    "line one\nline two",
	}))

	assert.Contains(t, raw, "To: bob@example.com\r\n")
	assert.Contains(t, raw, "From: alice\r\n")
	assert.Contains(t, raw, "Subject: hello world\r\n")
	assert.Contains(t, raw, "Date: Wed, 01 May 2024 10:00:00 +0000\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\nline one\r\nline two\r\n"))
}

func TestDeliverPipesMessageToAgent(t *testing.T) {
	dir := t.TempDir()
	captured := filepath.Join(dir, "captured.eml")
	script := filepath.Join(dir, "sendmail")
	body := "#!/bin/sh\necho \"$@\" > " + captured + ".args\ncat > " + captured + "\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))

	transport := NewSendmailTransport(script)
	require.True(t, transport.Available())

	err := transport.Deliver(context.Background(), domain.EmailMessage{
		To: "bob@example.com", From: "alice", Subject: "hi", Body: "Sent from AI terminal",
	})
	require.NoError(t, err)

	args, err := os.ReadFile(captured + ".args")
	require.NoError(t, err)
	assert.Equal(t, "-t -oi\n", string(args))

	msg, err := os.ReadFile(captured)
	require.NoError(t, err)
	assert.Contains(t, string(msg), "To: bob@example.com")
	assert.Contains(t, string(msg), "Sent from AI terminal")
}

func TestDeliverReportsAgentFailure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "sendmail")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho 'relay denied' 1>&2\nexit 75\n"), 0o755))

	err := NewSendmailTransport(script).Deliver(context.Background(), domain.EmailMessage{To: "x@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay denied")
}

func TestAvailableMissingBinary(t *testing.T) {
	assert.False(t, NewSendmailTransport(filepath.Join(t.TempDir(), "missing")).Available())
}
