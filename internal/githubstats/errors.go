package githubstats

import "fmt"

// APIError represents a failed GitHub API call.
type APIError struct {
	Path    string
	Status  int
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("github API error for %s: %s: %v", e.Path, e.Message, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("github API error for %s: status %d: %s", e.Path, e.Status, e.Message)
	default:
		return fmt.Sprintf("github API error: %s", e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
