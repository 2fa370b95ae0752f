package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/githubstats"
	"github.com/marcelo/profile-sync/internal/merge"
	"github.com/marcelo/profile-sync/internal/observability"
	"github.com/marcelo/profile-sync/internal/profile"
	"github.com/marcelo/profile-sync/internal/store"
)

var githubStatsCmd = &cobra.Command{
	Use:   "github-stats",
	Short: "Fetch aggregated GitHub account statistics",
	Long:  "Fetches public repository counts, stars, forks and language totals for a GitHub account. With --save a one-line summary is merged into the profile record as a fact.",
	RunE:  runGitHubStats,
}

var (
	githubConfigFile  string
	githubUserFlag    string
	githubProfilePath string
	githubOutFile     string
	githubSave        bool
	githubVerbose     bool
)

func init() {
	githubStatsCmd.Flags().StringVarP(&githubConfigFile, "config", "c", "", "Path to JSON config file")
	githubStatsCmd.Flags().StringVarP(&githubUserFlag, "user", "u", "", "GitHub login to fetch stats for")
	githubStatsCmd.Flags().StringVarP(&githubProfilePath, "profile", "p", "", "Path to the profile record file")
	githubStatsCmd.Flags().StringVarP(&githubOutFile, "out", "o", "", "Write the stats as JSON to this file")
	githubStatsCmd.Flags().BoolVar(&githubSave, "save", false, "Merge the stats summary into the profile record")
	githubStatsCmd.Flags().BoolVarP(&githubVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(githubStatsCmd)
}

func runGitHubStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(githubConfigFile, config.Config{
		GitHubUser:  githubUserFlag,
		ProfilePath: githubProfilePath,
		Verbose:     githubVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.GitHubUser == "" {
		return fmt.Errorf("GitHub user not set, use --user or the config file")
	}

	client := githubstats.NewClient("", cfg.GitHubToken)
	stats, err := client.Fetch(context.Background(), cfg.GitHubUser)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintGitHubStats(stats)

	if githubOutFile != "" {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		if err := os.WriteFile(githubOutFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write stats to %s: %w", githubOutFile, err)
		}
		fmt.Printf("Stats written to %s\n", githubOutFile)
	}

	if !githubSave {
		return nil
	}

	recordStore := store.New(cfg.ProfilePath)
	current := recordStore.Load()
	merged := merge.Apply(current, &profile.Fragment{Facts: []string{stats.Summary()}})
	if err := recordStore.Save(merged); err != nil {
		return err
	}
	fmt.Printf("Stats summary merged into %s\n", recordStore.Path())
	return nil
}
