package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a profile fragment from a resume without merging",
	Long:  "Runs the heuristic extractors over a resume file or profile URL and prints the resulting fragment as JSON. The stored profile record is not touched.",
	RunE:  runExtract,
}

var (
	extractConfigFile string
	extractResume     string
	extractURL        string
	extractOutFile    string
	extractUseBrowser bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractConfigFile, "config", "c", "", "Path to JSON config file")
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to resume file (PDF or text)")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL to fetch a profile page from")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Write the fragment JSON to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use headless browser for script-rendered pages")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(extractConfigFile, config.Config{
		Resume:     extractResume,
		ResumeURL:  extractURL,
		UseBrowser: extractUseBrowser,
		Verbose:    extractVerbose,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	text, err := acquireText(ctx, cfg)
	if err != nil {
		return err
	}

	fragment, err := extractFragment(text)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintFragment(fragment)
	}

	data, err := json.MarshalIndent(fragment, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal fragment: %w", err)
	}

	if extractOutFile != "" {
		if err := os.WriteFile(extractOutFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write fragment to %s: %w", extractOutFile, err)
		}
		fmt.Printf("Fragment written to %s\n", extractOutFile)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
