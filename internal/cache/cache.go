// Package cache persists the last merged content snapshot in a local
// SQLite store. The cache is a performance optimization over idempotent
// recomputation: reads report corruption as absence, and callers treat
// write failures as non-fatal.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/PriKalra/priyata-universe/internal/content"
)

// snapshotKey is the single slot the merged content snapshot lives under.
// Concurrent writers are last-write-wins.
const snapshotKey = "content_feed"

// Store wraps the SQLite key/value store. Separate read and write
// connections; the write side is capped at one connection.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Read returns the stored snapshot. A missing, empty or unparsable record
// is reported as absent, never as an error.
func (s *Store) Read() (Record, bool) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = ?", snapshotKey).Scan(&value)
	if err != nil {
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return Record{}, false
	}
	if rec.CapturedAt.IsZero() {
		return Record{}, false
	}
	return rec, true
}

// Write stores a snapshot of items captured now, replacing any previous
// snapshot.
func (s *Store) Write(items []content.Item) error {
	data, err := json.Marshal(Record{CapturedAt: time.Now(), Items: items})
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, snapshotKey, string(data))
	return err
}

// Clear drops the stored snapshot so the next load refetches.
func (s *Store) Clear() error {
	_, err := s.writeDB.Exec("DELETE FROM meta WHERE key = ?", snapshotKey)
	return err
}

// Stats reports the snapshot item count, capture time, and database file
// size in bytes.
func (s *Store) Stats(dbPath string) (count int, capturedAt time.Time, size int64, err error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, time.Time{}, 0, fmt.Errorf("stat db: %w", err)
	}
	rec, ok := s.Read()
	if !ok {
		return 0, time.Time{}, info.Size(), nil
	}
	return len(rec.Items), rec.CapturedAt, info.Size(), nil
}
