package validation

import "fmt"

// CompileError represents a pdflatex failure. Log carries the combined
// compiler output when a run got far enough to produce any.
type CompileError struct {
	Message string
	Log     string
	Cause   error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("latex compile error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("latex compile error: %s", e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}
