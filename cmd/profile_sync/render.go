package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcelo/profile-sync/internal/config"
	"github.com/marcelo/profile-sync/internal/rendering"
	"github.com/marcelo/profile-sync/internal/store"
	"github.com/marcelo/profile-sync/internal/validation"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the profile record as a LaTeX resume",
	Long:  "Renders the stored profile record through a LaTeX template and writes the .tex document. With --compile the document is also compiled with pdflatex to verify it builds.",
	RunE:  runRender,
}

var (
	renderConfigFile   string
	renderProfilePath  string
	renderTemplateFile string
	renderOutFile      string
	renderCompile      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file")
	renderCmd.Flags().StringVarP(&renderProfilePath, "profile", "p", "", "Path to the profile record file")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to LaTeX template (built-in template when omitted)")
	renderCmd.Flags().StringVarP(&renderOutFile, "out", "o", "resume.tex", "Output .tex file path")
	renderCmd.Flags().BoolVar(&renderCompile, "compile", false, "Compile the rendered document with pdflatex")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings(renderConfigFile, config.Config{
		ProfilePath: renderProfilePath,
		Template:    renderTemplateFile,
	})
	if err != nil {
		return err
	}

	record := store.New(cfg.ProfilePath).Load()
	if record.Name == "" && len(record.Contact) == 0 {
		return fmt.Errorf("profile record at %s is empty, run 'profile_sync sync' first", cfg.ProfilePath)
	}

	document, err := rendering.Render(record, cfg.Template)
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOutFile, []byte(document), 0o644); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", renderOutFile, err)
	}
	fmt.Printf("LaTeX document written to %s\n", renderOutFile)

	if !renderCompile {
		return nil
	}
	if !validation.Available() {
		return fmt.Errorf("--compile requested but pdflatex is not installed")
	}

	workDir := filepath.Dir(renderOutFile)
	result, err := validation.Compile(context.Background(), renderOutFile, workDir)
	if err != nil {
		return err
	}
	defer validation.Cleanup(workDir, renderOutFile)

	fmt.Printf("Compiled PDF written to %s\n", result.PDFPath)
	return nil
}
