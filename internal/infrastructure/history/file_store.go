package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// FileStore appends journal records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(record domain.HistoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Clear removes the journal file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Records loads entries newest first (best-effort; malformed lines are skipped).
func (f *FileStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.HistoryRecord
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal(lines[i], &rec); err != nil {
			continue
		}
		if search != "" && !strings.Contains(rec.Command, search) && !strings.Contains(rec.Utterance, search) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

var _ ports.HistoryRepository = (*FileStore)(nil)
