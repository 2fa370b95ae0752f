package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/marcelo/profile-sync/internal/profile"
)

// CreateSyncRun records the start of a sync and returns its ID
func (db *DB) CreateSyncRun(ctx context.Context, source, input string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sync_runs (source, input, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		source, input, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create sync run: %w", err)
	}
	return id, nil
}

// CompleteSyncRun marks a sync run as completed or failed
func (db *DB) CompleteSyncRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sync_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete sync run: %w", err)
	}
	return nil
}

// ListSyncRuns returns the most recent sync runs, newest first
func (db *DB) ListSyncRuns(ctx context.Context, limit int) ([]SyncRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, source, input, status, created_at, completed_at
		 FROM sync_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	defer rows.Close()

	var runs []SyncRun
	for rows.Next() {
		var run SyncRun
		if err := rows.Scan(&run.ID, &run.Source, &run.Input, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SaveSnapshot stores a JSON snapshot for a sync run, replacing any earlier
// snapshot of the same kind
func (db *DB) SaveSnapshot(ctx context.Context, runID uuid.UUID, kind string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profile_snapshots (run_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, kind, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", kind, err)
	}
	return nil
}

// GetSnapshot retrieves a raw snapshot by run ID and kind; a missing
// snapshot returns nil bytes without error
func (db *DB) GetSnapshot(ctx context.Context, runID uuid.UUID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profile_snapshots WHERE run_id = $1 AND kind = $2`,
		runID, kind,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", kind, err)
	}
	return content, nil
}

// GetFragmentByRunID loads the extracted fragment recorded for a run
func (db *DB) GetFragmentByRunID(ctx context.Context, runID uuid.UUID) (*profile.Fragment, error) {
	content, err := db.GetSnapshot(ctx, runID, SnapshotFragment)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var fragment profile.Fragment
	if err := json.Unmarshal(content, &fragment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fragment: %w", err)
	}
	return &fragment, nil
}

// GetRecordByRunID loads the merged record recorded for a run
func (db *DB) GetRecordByRunID(ctx context.Context, runID uuid.UUID) (*profile.Record, error) {
	content, err := db.GetSnapshot(ctx, runID, SnapshotRecord)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var record profile.Record
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}
