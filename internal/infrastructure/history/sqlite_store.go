package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// SQLiteStore journals executed commands in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore opens (or creates) the database at path. When SQLite cannot
// be opened the store degrades to a JSONL file next to it.
func NewSQLiteStore(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	fallback := NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	store := &SQLiteStore{db: db, path: path, fallback: fallback}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path, fallback: fallback}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS executions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		session_id TEXT,
		utterance TEXT,
		command TEXT,
		intent TEXT,
		exit_code INTEGER,
		success INTEGER,
		execution_time_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO executions
		(timestamp, session_id, utterance, command, intent, exit_code, success, execution_time_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(domain.TimestampFormat),
		record.SessionID,
		record.Utterance,
		record.Command,
		string(record.Intent),
		record.ExitCode,
		boolToInt(record.Success),
		record.ExecutionTimeMS,
	)
	return err
}

// Records returns journal entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, session_id, utterance, command, intent, exit_code, success, execution_time_ms FROM executions")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE utterance LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, intent string
		var success int
		if err := rows.Scan(&ts, &rec.SessionID, &rec.Utterance, &rec.Command, &intent, &rec.ExitCode, &success, &rec.ExecutionTimeMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Intent = domain.Intent(intent)
		rec.Success = success == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all journal entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM executions")
	return err
}

// Path returns the sqlite database path, or the JSONL path when degraded.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
