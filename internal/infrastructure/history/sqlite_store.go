// Package history keeps an audit trail of mutations that went through
// the store: sets, preset/profile applies, saves, restores, resets.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/ports"
)

// SQLiteStore persists change records in a SQLite database. When the
// database cannot be opened the store degrades to a no-op so history
// never blocks the actual config work.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) dir/changes.db.
func NewSQLiteStore(dir string) *SQLiteStore {
	path := filepath.Join(dir, "changes.db")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &SQLiteStore{path: path}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS changes (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		action TEXT NOT NULL,
		key TEXT,
		old_value TEXT,
		new_value TEXT,
		path TEXT
	);`)
	return err
}

// Record inserts a change record, assigning an id and timestamp when
// missing.
func (s *SQLiteStore) Record(rec domain.ChangeRecord) error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO changes
		(id, timestamp, action, key, old_value, new_value, path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Timestamp.Format(time.RFC3339),
		rec.Action,
		rec.Key,
		rec.OldValue,
		rec.NewValue,
		rec.Path,
	)
	if err != nil {
		return fmt.Errorf("record change: %w", err)
	}
	return nil
}

// Recent returns the latest records, newest first.
func (s *SQLiteStore) Recent(limit int) ([]domain.ChangeRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT id, timestamp, action, key, old_value, new_value, path
		FROM changes ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []domain.ChangeRecord
	for rows.Next() {
		var rec domain.ChangeRecord
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.Action, &rec.Key, &rec.OldValue, &rec.NewValue, &rec.Path); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the backing database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
