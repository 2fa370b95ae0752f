// Package store persists the profile record to a JSON file with a
// timestamped backup of the previous version retained before every overwrite.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/marcelo/profile-sync/internal/profile"
)

// backupTimestampLayout produces filesystem-safe, sortable backup suffixes.
const backupTimestampLayout = "20060102-150405"

// Store reads and writes a profile record at a fixed path.
type Store struct {
	path string
	// now is swappable in tests so backup names are deterministic.
	now func() time.Time
}

// New returns a store for the record file at path.
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the record file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored record. A missing or corrupt file is recovered
// locally: a warning is logged and an empty but well-typed record is
// returned. Load is never fatal.
func (s *Store) Load() *profile.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot read profile %s: %v; starting from empty record", s.path, err)
		}
		return profile.NewRecord()
	}

	record := profile.NewRecord()
	if err := json.Unmarshal(data, record); err != nil {
		log.Printf("warning: profile %s is corrupt: %v; starting from empty record", s.path, err)
		return profile.NewRecord()
	}
	return record
}

// Save writes the record back. The previous version, if any, is first copied
// byte-for-byte to a timestamped backup path; when that copy fails the main
// write is not attempted, so the prior good state is never lost. The write
// itself goes through a temp file and rename in the same directory, so a
// failed write leaves both the old record and its backup intact.
func (s *Store) Save(record *profile.Record) error {
	if record == nil {
		return &SaveError{Path: s.path, Message: "nil record"}
	}

	if err := s.backup(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &SaveError{Path: s.path, Message: "marshal record", Cause: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &SaveError{Path: s.path, Message: "create profile directory", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &SaveError{Path: s.path, Message: "create temp file", Cause: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &SaveError{Path: s.path, Message: "write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Path: s.path, Message: "close temp file", Cause: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Path: s.path, Message: "replace record file", Cause: err}
	}
	return nil
}

// BackupPath returns the backup path that would be used at time t.
func (s *Store) BackupPath(t time.Time) string {
	return fmt.Sprintf("%s.%s.bak", s.path, t.Format(backupTimestampLayout))
}

// backup copies the current record file to a timestamped sibling. A missing
// record file means there is nothing to back up.
func (s *Store) backup() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &BackupError{Path: s.path, Message: "read current record", Cause: err}
	}

	backupPath := s.BackupPath(s.now())
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return &BackupError{Path: backupPath, Message: "write backup", Cause: err}
	}
	return nil
}
