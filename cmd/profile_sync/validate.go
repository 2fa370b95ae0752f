package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the profile record against its JSON schema",
	RunE:  runValidate,
}

var (
	validateConfigFile  string
	validateProfilePath string
)

func init() {
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Path to JSON config file")
	validateCmd.Flags().StringVarP(&validateProfilePath, "profile", "p", "", "Path to the profile record file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(validateConfigFile, config.Config{ProfilePath: validateProfilePath})
	if err != nil {
		return err
	}

	if err := schemas.ValidateProfileFile(cfg.ProfilePath); err != nil {
		return err
	}

	fmt.Printf("%s is valid\n", cfg.ProfilePath)
	return nil
}
