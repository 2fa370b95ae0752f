// Package validation checks that a rendered resume document actually
// compiles with pdflatex before it is written out as the final artifact.
package validation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompileTimeout bounds a single pdflatex run.
const CompileTimeout = 30 * time.Second

// CompileResult holds the outcome of a compilation check.
type CompileResult struct {
	PDFPath string
	Log     string
}

// Available reports whether pdflatex can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("pdflatex")
	return err == nil
}

// Compile runs pdflatex on the document at texPath inside workDir. An empty
// workDir compiles into a fresh temporary directory. A PDF produced despite
// compiler errors is returned together with the error so callers can decide
// whether a partial document is acceptable.
func Compile(ctx context.Context, texPath string, workDir string) (*CompileResult, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompileError{
			Message: "pdflatex not found in PATH, install a LaTeX distribution (e.g. TeX Live)",
			Cause:   err,
		}
	}

	if workDir == "" {
		dir, err := os.MkdirTemp("", "profile-sync-tex-*")
		if err != nil {
			return nil, &CompileError{Message: "failed to create working directory", Cause: err}
		}
		workDir = dir
	} else if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, &CompileError{
			Message: fmt.Sprintf("failed to create working directory: %s", workDir),
			Cause:   err,
		}
	}

	base := filepath.Base(texPath)
	workTexPath := filepath.Join(workDir, base)
	if texPath != workTexPath {
		content, err := os.ReadFile(texPath)
		if err != nil {
			return nil, &CompileError{
				Message: fmt.Sprintf("failed to read document: %s", texPath),
				Cause:   err,
			}
		}
		if err := os.WriteFile(workTexPath, content, 0o644); err != nil {
			return nil, &CompileError{
				Message: fmt.Sprintf("failed to stage document in: %s", workDir),
				Cause:   err,
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CompileTimeout)
	defer cancel()

	// nonstopmode keeps pdflatex from waiting on interactive prompts.
	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode", "-output-directory", workDir, workTexPath)

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output
	runErr := cmd.Run()

	result := &CompileResult{
		PDFPath: filepath.Join(workDir, strings.TrimSuffix(base, ".tex")+".pdf"),
		Log:     output.String(),
	}

	if _, err := os.Stat(result.PDFPath); os.IsNotExist(err) {
		return nil, &CompileError{
			Message: "compilation produced no PDF",
			Log:     result.Log,
			Cause:   runErr,
		}
	}
	if runErr != nil {
		return result, &CompileError{
			Message: "compilation finished with errors, PDF may be incomplete",
			Log:     result.Log,
			Cause:   runErr,
		}
	}
	return result, nil
}

// Cleanup removes compilation artifacts. Directories created by Compile are
// removed entirely; caller-owned directories only lose auxiliary files.
func Cleanup(workDir string, texPath string) error {
	if workDir == "" {
		return nil
	}
	if strings.Contains(filepath.Base(workDir), "profile-sync-tex-") {
		return os.RemoveAll(workDir)
	}

	stem := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	for _, ext := range []string{".aux", ".log", ".out", ".toc"} {
		_ = os.Remove(filepath.Join(workDir, stem+ext))
	}
	return nil
}
