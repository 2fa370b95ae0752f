package store

import "fmt"

// BackupError represents a failure creating the pre-write backup copy.
// The main write is never attempted after a backup failure.
type BackupError struct {
	Path    string
	Message string
	Cause   error
}

func (e *BackupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("backup error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("backup error for %s: %s", e.Path, e.Message)
}

func (e *BackupError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure writing the record file itself.
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("save error for %s: %s", e.Path, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
