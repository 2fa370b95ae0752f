package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sync runs",
	Long:  "Lists sync runs recorded in PostgreSQL, newest first. With --run-id the fragment snapshot of that run is printed instead.",
	RunE:  runHistory,
}

var (
	historyConfigFile  string
	historyDatabaseURL string
	historyLimit       int
	historyRunID       string
)

func init() {
	historyCmd.Flags().StringVarP(&historyConfigFile, "config", "c", "", "Path to JSON config file")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL URL for sync history")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyRunID, "run-id", "", "Show the extracted fragment for one run")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(historyConfigFile, config.Config{DatabaseURL: historyDatabaseURL})
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL not set, use --db-url or DATABASE_URL")
	}

	ctx := context.Background()
	history, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer history.Close()

	if historyRunID != "" {
		runID, err := uuid.Parse(historyRunID)
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", historyRunID, err)
		}
		fragment, err := history.GetFragmentByRunID(ctx, runID)
		if err != nil {
			return err
		}
		if fragment == nil {
			return fmt.Errorf("no fragment recorded for run %s", runID)
		}
		data, err := json.MarshalIndent(fragment, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal fragment: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	runs, err := history.ListSyncRuns(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No sync runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tINPUT\tSTATUS\tSTARTED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID, run.Source, run.Input, run.Status, run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
