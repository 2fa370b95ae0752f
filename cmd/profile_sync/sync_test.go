package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelo/profile-sync/internal/profile"
)

const testResume = `Alice Souza
alice@example.com
+55 11 98765-4321

Certifications
AWS Certified Cloud Practitioner
Scrum.org Professional Scrum Master I

Experience
Example Corp

Languages
English - Fluent
Português - Nativo
`

func resetSyncFlags() {
	syncConfigFile = ""
	syncResume = ""
	syncURL = ""
	syncProfilePath = ""
	syncDatabaseURL = ""
	syncGitHubUser = ""
	syncUseBrowser = false
	syncVerbose = false
	syncDryRun = false
}

func TestRunSync_MergesResumeIntoRecord(t *testing.T) {
	resetSyncFlags()
	defer resetSyncFlags()

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0o644))

	syncResume = resumePath
	syncProfilePath = filepath.Join(tmpDir, "profile.json")

	require.NoError(t, runSync(nil, nil))

	data, err := os.ReadFile(syncProfilePath)
	require.NoError(t, err)

	var record profile.Record
	require.NoError(t, json.Unmarshal(data, &record))

	assert.Contains(t, record.Contact, "alice@example.com")
	assert.Contains(t, record.Contact, "+5511987654321")
	assert.Contains(t, record.Certifications, "aws_certified_cloud_practitioner")
}

func TestRunSync_DryRunDoesNotSave(t *testing.T) {
	resetSyncFlags()
	defer resetSyncFlags()

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0o644))

	syncResume = resumePath
	syncProfilePath = filepath.Join(tmpDir, "profile.json")
	syncDryRun = true

	require.NoError(t, runSync(nil, nil))

	_, err := os.Stat(syncProfilePath)
	assert.True(t, os.IsNotExist(err), "dry run must not write the record")
}

func TestRunSync_Idempotent(t *testing.T) {
	resetSyncFlags()
	defer resetSyncFlags()

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0o644))

	syncResume = resumePath
	syncProfilePath = filepath.Join(tmpDir, "profile.json")

	require.NoError(t, runSync(nil, nil))
	first, err := os.ReadFile(syncProfilePath)
	require.NoError(t, err)

	require.NoError(t, runSync(nil, nil))
	second, err := os.ReadFile(syncProfilePath)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second), "re-syncing the same resume must not change the record")
}

func TestRunSync_MissingInput(t *testing.T) {
	resetSyncFlags()
	defer resetSyncFlags()

	syncProfilePath = filepath.Join(t.TempDir(), "profile.json")

	assert.Error(t, runSync(nil, nil))
}
