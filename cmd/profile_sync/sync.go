package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/db"
	"github.com/marcelo/profile-sync/internal/githubstats"
	"github.com/marcelo/profile-sync/internal/merge"
	"github.com/marcelo/profile-sync/internal/observability"
	"github.com/marcelo/profile-sync/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Extract from a resume and merge into the profile record",
	Long:  "Runs the full pipeline: reads a resume file or profile URL, extracts a fragment, merges it into the stored profile record and saves the result. The previous record version is kept as a timestamped backup. With --db-url the run and its snapshots are also recorded in PostgreSQL.",
	RunE:  runSync,
}

var (
	syncConfigFile  string
	syncResume      string
	syncURL         string
	syncProfilePath string
	syncDatabaseURL string
	syncGitHubUser  string
	syncUseBrowser  bool
	syncVerbose     bool
	syncDryRun      bool
)

func init() {
	syncCmd.Flags().StringVarP(&syncConfigFile, "config", "c", "", "Path to JSON config file")
	syncCmd.Flags().StringVarP(&syncResume, "resume", "r", "", "Path to resume file (PDF or text)")
	syncCmd.Flags().StringVarP(&syncURL, "url", "u", "", "URL to fetch a profile page from")
	syncCmd.Flags().StringVarP(&syncProfilePath, "profile", "p", "", "Path to the profile record file")
	syncCmd.Flags().StringVar(&syncDatabaseURL, "db-url", "", "PostgreSQL URL for sync history (optional)")
	syncCmd.Flags().StringVar(&syncGitHubUser, "github-user", "", "Also fold GitHub stats for this login into the record")
	syncCmd.Flags().BoolVar(&syncUseBrowser, "use-browser", false, "Use headless browser for script-rendered pages")
	syncCmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Print detailed debug information")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Merge in memory but do not save the record")

	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(syncConfigFile, config.Config{
		Resume:      syncResume,
		ResumeURL:   syncURL,
		ProfilePath: syncProfilePath,
		DatabaseURL: syncDatabaseURL,
		GitHubUser:  syncGitHubUser,
		UseBrowser:  syncUseBrowser,
		Verbose:     syncVerbose,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stderr)

	history, runID, err := startHistory(ctx, cfg)
	if err != nil {
		return err
	}
	if history != nil {
		defer history.Close()
	}

	text, err := acquireText(ctx, cfg)
	if err != nil {
		finishHistory(ctx, history, runID, db.StatusFailed)
		return err
	}

	fragment, err := extractFragment(text)
	if err != nil {
		finishHistory(ctx, history, runID, db.StatusFailed)
		return err
	}
	if cfg.GitHubUser != "" {
		stats, err := githubstats.NewClient("", cfg.GitHubToken).Fetch(ctx, cfg.GitHubUser)
		if err != nil {
			finishHistory(ctx, history, runID, db.StatusFailed)
			return err
		}
		fragment.Facts = append(fragment.Facts, stats.Summary())
		if cfg.Verbose {
			printer.PrintGitHubStats(stats)
		}
	}

	if cfg.Verbose {
		printer.PrintFragment(fragment)
	}

	recordStore := store.New(cfg.ProfilePath)
	current := recordStore.Load()
	merged := merge.Apply(current, fragment)
	delta := observability.Diff(current, merged)

	if history != nil {
		if err := history.SaveSnapshot(ctx, runID, db.SnapshotFragment, fragment); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record fragment snapshot: %v\n", err)
		}
		if err := history.SaveSnapshot(ctx, runID, db.SnapshotRecord, merged); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record merged snapshot: %v\n", err)
		}
	}

	if syncDryRun {
		printer.PrintMergeSummary(delta)
		fmt.Println("Dry run, record not saved")
		finishHistory(ctx, history, runID, db.StatusCompleted)
		return nil
	}

	if err := recordStore.Save(merged); err != nil {
		finishHistory(ctx, history, runID, db.StatusFailed)
		return err
	}

	printer.PrintMergeSummary(delta)
	fmt.Printf("Profile record saved to %s\n", recordStore.Path())
	finishHistory(ctx, history, runID, db.StatusCompleted)
	return nil
}

// startHistory opens the optional sync history database and records the
// start of this run. A missing database URL disables history silently.
func startHistory(ctx context.Context, cfg *config.Config) (*db.DB, uuid.UUID, error) {
	if cfg.DatabaseURL == "" {
		return nil, uuid.Nil, nil
	}

	history, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if err := history.EnsureSchema(ctx); err != nil {
		history.Close()
		return nil, uuid.Nil, err
	}

	source, input := db.SourceResumeFile, cfg.Resume
	if cfg.ResumeURL != "" {
		source, input = db.SourceProfileURL, cfg.ResumeURL
	}

	runID, err := history.CreateSyncRun(ctx, source, input)
	if err != nil {
		history.Close()
		return nil, uuid.Nil, err
	}
	return history, runID, nil
}

func finishHistory(ctx context.Context, history *db.DB, runID uuid.UUID, status string) {
	if history == nil {
		return
	}
	if err := history.CompleteSyncRun(ctx, runID, status); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close sync run: %v\n", err)
	}
}
