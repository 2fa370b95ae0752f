package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"profile_path": "data/profile.json",
		"resume_url": "https://example.com/in/alice",
		"github_user": "alice",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/profile.json", cfg.ProfilePath)
	assert.Equal(t, "https://example.com/in/alice", cfg.ResumeURL)
	assert.Equal(t, "alice", cfg.GitHubUser)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid url", Config{ResumeURL: "https://example.com/in/alice"}, false},
		{"invalid url", Config{ResumeURL: "not a url"}, true},
		{"invalid database url", Config{DatabaseURL: "::broken"}, true},
		{
			"resume and url are exclusive",
			Config{Resume: "resume.pdf", ResumeURL: "https://example.com"},
			true,
		},
		{"missing template file", Config{Template: "/nonexistent/resume.tex"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ExistingResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Alice"), 0o644))

	cfg := Config{Resume: path}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{GitHubUser: "alice"}
	defaults := Config{
		ProfilePath: DefaultProfilePath,
		GitHubUser:  "ignored",
		Verbose:     true,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, DefaultProfilePath, merged.ProfilePath)
	assert.Equal(t, "alice", merged.GitHubUser, "explicit value wins over default")
	assert.True(t, merged.Verbose)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("DATABASE_URL", "postgres://localhost/profiles")

	cfg := Config{GitHubToken: "from-config"}
	cfg.ApplyEnv()

	assert.Equal(t, "from-config", cfg.GitHubToken, "config value wins over env")
	assert.Equal(t, "postgres://localhost/profiles", cfg.DatabaseURL)
}
