package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/voxsh/internal/domain"
)

func sampleRecords() []domain.HistoryRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return []domain.HistoryRecord{
		{Timestamp: now, SessionID: "s1", Command: "ls -la", Intent: domain.IntentRunShell, Success: true},
		{Timestamp: now, SessionID: "s1", Command: "make", Intent: domain.IntentRunShell, ExitCode: 2},
		{Timestamp: now, SessionID: "s1", Command: "pip install openaicli", Intent: domain.IntentInstallPackage, Success: true},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	t.Cleanup(func() { _ = store.Close() })

	for _, rec := range sampleRecords() {
		require.NoError(t, store.Save(rec))
	}

	records, err := store.Records(0, "")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "pip install openaicli", records[0].Command, "newest first")
	assert.Equal(t, domain.IntentInstallPackage, records[0].Intent)
	assert.Equal(t, 2, records[1].ExitCode)
	assert.False(t, records[1].Success)

	limited, err := store.Records(1, "")
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	found, err := store.Records(0, "ls")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ls -la", found[0].Command)

	require.NoError(t, store.Clear())
	records, err = store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))

	records, err := store.Records(0, "")
	require.NoError(t, err)
	assert.Empty(t, records)

	for _, rec := range sampleRecords() {
		require.NoError(t, store.Save(rec))
	}

	records, err = store.Records(2, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "pip install openaicli", records[0].Command)
	assert.Equal(t, "make", records[1].Command)

	found, err := store.Records(0, "make")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
