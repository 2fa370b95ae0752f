// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	ProfilePath string `json:"profile_path,omitempty"` // Path to the persisted profile record
	Resume      string `json:"resume,omitempty"`       // Path to a local resume file (PDF or text)
	ResumeURL   string `json:"resume_url,omitempty" validate:"omitempty,url"` // URL to fetch a profile page from
	Template    string `json:"template,omitempty"`     // Path to LaTeX template

	// GitHub
	GitHubUser  string `json:"github_user,omitempty" validate:"omitempty,hostname_rfc1123"` // GitHub login to pull stats for
	GitHubToken string `json:"github_token,omitempty"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for script-rendered pages
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,uri"` // PostgreSQL connection URL
}

// DefaultProfilePath is used when neither config nor flags name a record file.
const DefaultProfilePath = "profile.json"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are not checked here since those are enforced by CLI flag validation after
// merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.ResumeURL != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_url' are mutually exclusive")
	}

	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("config error: field '%s' failed '%s' validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ProfilePath == "" {
		result.ProfilePath = defaults.ProfilePath
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeURL == "" {
		result.ResumeURL = defaults.ResumeURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.GitHubUser == "" {
		result.GitHubUser = defaults.GitHubUser
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// ApplyEnv fills credential fields from the environment when the config file
// left them empty. Pairs with godotenv loading .env at startup.
func (c *Config) ApplyEnv() {
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}
