package profile

import (
	"regexp"
	"strings"
)

// nonAlnumRun matches every run of characters that cannot appear in a map key.
var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveKey normalizes a display name into the canonical map key: lower-cased,
// with every non-alphanumeric run collapsed to a single underscore and
// leading/trailing separators trimmed. DeriveKey is idempotent, so re-deriving
// from the same name (or from a previously derived key) yields the same key.
func DeriveKey(name string) string {
	key := nonAlnumRun.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(key, "_")
}
