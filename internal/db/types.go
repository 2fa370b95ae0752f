package db

import (
	"time"

	"github.com/google/uuid"
)

// SyncRun represents one recorded sync against a source document or URL
type SyncRun struct {
	ID          uuid.UUID  `json:"id"`
	Source      string     `json:"source"`
	Input       string     `json:"input"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Source constants for known sync inputs
const (
	SourceResumeFile = "resume_file"
	SourceProfileURL = "profile_url"
	SourceGitHub     = "github"
)

// Run status constants
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Snapshot kind constants for profile_snapshots rows
const (
	SnapshotFragment = "fragment"
	SnapshotRecord   = "record"
)
