package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelo/profile-sync/internal/profile"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "profile.json"))
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)
	}
	return s
}

func TestLoad_MissingFileReturnsEmptyRecord(t *testing.T) {
	s := newTestStore(t)
	record := s.Load()

	require.NotNil(t, record)
	assert.NotNil(t, record.Contact)
	assert.NotNil(t, record.Certifications)
}

func TestLoad_CorruptFileReturnsEmptyRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	record := s.Load()
	require.NotNil(t, record)
	assert.Empty(t, record.Contact)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	record := profile.NewRecord()
	record.Name = "Alice Souza"
	record.Contact = []string{"alice@example.com"}
	record.Certifications["aws_ccp"] = profile.Certification{
		Name:                "AWS Certified Cloud Practitioner",
		ExtractedFromResume: true,
	}

	require.NoError(t, s.Save(record))

	loaded := s.Load()
	assert.Equal(t, "Alice Souza", loaded.Name)
	assert.Equal(t, []string{"alice@example.com"}, loaded.Contact)
	assert.Equal(t, record.Certifications, loaded.Certifications)
}

func TestSave_FirstWriteNeedsNoBackup(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(profile.NewRecord()))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no backup should be written when no prior record exists")
}

func TestSave_BacksUpPreviousVersion(t *testing.T) {
	s := newTestStore(t)

	first := profile.NewRecord()
	first.Name = "Version One"
	require.NoError(t, s.Save(first))

	second := profile.NewRecord()
	second.Name = "Version Two"
	require.NoError(t, s.Save(second))

	backupPath := s.BackupPath(s.now())
	backupData, err := os.ReadFile(backupPath)
	require.NoError(t, err, "previous version must be copied to the timestamped backup path")

	var backedUp profile.Record
	require.NoError(t, json.Unmarshal(backupData, &backedUp))
	assert.Equal(t, "Version One", backedUp.Name)

	assert.Equal(t, "Version Two", s.Load().Name)
}

func TestSave_BackupIsByteIdentical(t *testing.T) {
	s := newTestStore(t)

	raw := []byte(`{"name":"Hand Written","contact":[]}` + "\n")
	require.NoError(t, os.WriteFile(s.Path(), raw, 0644))

	require.NoError(t, s.Save(profile.NewRecord()))

	backupData, err := os.ReadFile(s.BackupPath(s.now()))
	require.NoError(t, err)
	assert.Equal(t, raw, backupData)
}

func TestSave_BackupFailureAbortsWrite(t *testing.T) {
	s := newTestStore(t)

	first := profile.NewRecord()
	first.Name = "Prior Good State"
	require.NoError(t, s.Save(first))

	// Occupy the backup path with a directory so the backup copy fails.
	require.NoError(t, os.Mkdir(s.BackupPath(s.now()), 0755))

	second := profile.NewRecord()
	second.Name = "Must Not Land"
	err := s.Save(second)
	require.Error(t, err)

	var backupErr *BackupError
	assert.ErrorAs(t, err, &backupErr)

	assert.Equal(t, "Prior Good State", s.Load().Name, "failed backup must leave the prior record intact")
}

func TestSave_NilRecord(t *testing.T) {
	s := newTestStore(t)
	err := s.Save(nil)

	var saveErr *SaveError
	assert.ErrorAs(t, err, &saveErr)
}
