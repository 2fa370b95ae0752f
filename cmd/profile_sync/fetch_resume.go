package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/fetch"
)

var fetchResumeCmd = &cobra.Command{
	Use:   "fetch-resume",
	Short: "Download a profile page as text or PDF",
	Long:  "Fetches a profile page, extracts its readable text and writes it to a file. With --pdf the page is printed to PDF through a headless browser instead.",
	RunE:  runFetchResume,
}

var (
	fetchURLFlag    string
	fetchOutFile    string
	fetchAsPDF      bool
	fetchTimeout    time.Duration
	fetchUseBrowser bool
	fetchVerbose    bool
)

func init() {
	fetchResumeCmd.Flags().StringVarP(&fetchURLFlag, "url", "u", "", "URL of the profile page (required)")
	fetchResumeCmd.Flags().StringVarP(&fetchOutFile, "out", "o", "", "Output file path (required)")
	fetchResumeCmd.Flags().BoolVar(&fetchAsPDF, "pdf", false, "Print the page to PDF instead of extracting text")
	fetchResumeCmd.Flags().DurationVar(&fetchTimeout, "timeout", 60*time.Second, "Browser navigation timeout")
	fetchResumeCmd.Flags().BoolVar(&fetchUseBrowser, "use-browser", false, "Use headless browser when static fetch yields too little text")
	fetchResumeCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print detailed debug information")

	fetchResumeCmd.MarkFlagRequired("url")
	fetchResumeCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(fetchResumeCmd)
}

func runFetchResume(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if fetchAsPDF {
		data, err := fetch.DownloadPDF(ctx, fetchURLFlag, fetchTimeout, fetchVerbose)
		if err != nil {
			return err
		}
		if err := os.WriteFile(fetchOutFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF to %s: %w", fetchOutFile, err)
		}
		fmt.Printf("PDF written to %s (%d bytes)\n", fetchOutFile, len(data))
		return nil
	}

	result, err := fetch.URL(ctx, fetchURLFlag, fetch.DefaultOptions())
	if err != nil {
		return err
	}
	text := result.Text

	if fetchUseBrowser && fetch.ShouldUseBrowser(text) {
		if fetchVerbose {
			fmt.Fprintf(os.Stderr, "Static fetch returned %d chars, retrying with browser\n", len(text))
		}
		rendered, err := fetch.WithBrowser(ctx, fetchURLFlag, fetchTimeout, fetchVerbose)
		if err != nil {
			return err
		}
		text = rendered
	}

	if err := os.WriteFile(fetchOutFile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write text to %s: %w", fetchOutFile, err)
	}
	fmt.Printf("Text written to %s (%d chars)\n", fetchOutFile, len(text))
	return nil
}
