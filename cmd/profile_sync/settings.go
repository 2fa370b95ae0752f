package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/extraction"
	"github.com/marcelo/profile-sync/internal/fetch"
	"github.com/marcelo/profile-sync/internal/pdftext"
	"github.com/marcelo/profile-sync/internal/profile"
)

// loadSettings merges the optional config file, environment and flag values
// into one effective configuration. Flag values take precedence.
func loadSettings(configPath string, flags config.Config) (*config.Config, error) {
	base := config.Config{ProfilePath: config.DefaultProfilePath}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		base = fileCfg.MergeWithDefaults(base)
	}

	cfg := flags.MergeWithDefaults(base)
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// acquireText obtains normalized resume text from a local file or a profile
// URL, falling back to a headless browser for script-rendered pages.
func acquireText(ctx context.Context, cfg *config.Config) (string, error) {
	switch {
	case cfg.Resume != "":
		text, err := pdftext.FromFile(cfg.Resume)
		if err != nil {
			return "", fmt.Errorf("failed to read resume %s: %w", cfg.Resume, err)
		}
		return text, nil

	case cfg.ResumeURL != "":
		result, err := fetch.URL(ctx, cfg.ResumeURL, fetch.DefaultOptions())
		if err != nil {
			return "", err
		}
		text := result.Text

		if cfg.UseBrowser && fetch.ShouldUseBrowser(text) {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "Static fetch returned %d chars, retrying with browser\n", len(text))
			}
			rendered, err := fetch.WithBrowser(ctx, cfg.ResumeURL, 60*time.Second, cfg.Verbose)
			if err != nil {
				return "", err
			}
			text = pdftext.Normalize(rendered)
		}
		return text, nil
	}

	return "", fmt.Errorf("either --resume or --url must be provided")
}

// extractFragment runs extraction over resume text, rejecting empty input.
func extractFragment(text string) (*profile.Fragment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}
	return extraction.Extract(text), nil
}
