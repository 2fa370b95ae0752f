// Package main implements the profile_sync CLI tool for extracting profile
// data from resumes and merging it into a persistent structured record.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profile_sync",
	Short: "Keep a structured profile record in sync with resume documents",
	Long:  "profile_sync extracts contacts, certifications, languages and skills from resume text or profile pages and merges them into a persistent JSON profile record without overwriting curated data.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
