package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelo/profile-sync/internal/config"
)

func TestLoadSettings_Defaults(t *testing.T) {
	cfg, err := loadSettings("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProfilePath, cfg.ProfilePath)
}

func TestLoadSettings_FlagsOverrideConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"profile_path": "from-config.json",
		"github_user": "config-user"
	}`), 0o644))

	cfg, err := loadSettings(configPath, config.Config{GitHubUser: "flag-user"})
	require.NoError(t, err)
	assert.Equal(t, "from-config.json", cfg.ProfilePath)
	assert.Equal(t, "flag-user", cfg.GitHubUser)
}

func TestLoadSettings_InvalidConfig(t *testing.T) {
	_, err := loadSettings("", config.Config{ResumeURL: "not a url"})
	assert.Error(t, err)
}

func TestAcquireText_FromTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice Souza\n\n\n\nalice@example.com"), 0o644))

	text, err := acquireText(context.Background(), &config.Config{Resume: path})
	require.NoError(t, err)
	assert.Equal(t, "Alice Souza\n\nalice@example.com", text)
}

func TestAcquireText_NoInput(t *testing.T) {
	_, err := acquireText(context.Background(), &config.Config{})
	assert.Error(t, err)
}

func TestExtractFragment_EmptyText(t *testing.T) {
	_, err := extractFragment("   \n  ")
	assert.Error(t, err)
}
