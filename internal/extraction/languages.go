package extraction

import (
	"strings"

	"github.com/marcelo/profile-sync/internal/profile"
)

// ExtractLanguages finds spoken-language mentions and pairs each with the
// strongest proficiency token on the same line. Entries are deduplicated by
// case-insensitive canonical name, first occurrence wins.
func ExtractLanguages(text string) []profile.LanguageEntry {
	lines := strings.Split(strings.ToLower(text), "\n")

	entries := []profile.LanguageEntry{}
	seen := map[string]bool{}

	for _, line := range lines {
		for _, token := range spokenLanguageOrder {
			if !strings.Contains(line, token) {
				continue
			}
			name := spokenLanguages[token]
			lowerName := strings.ToLower(name)
			if seen[lowerName] {
				continue
			}
			seen[lowerName] = true
			entries = append(entries, profile.LanguageEntry{
				Name:        name,
				Proficiency: proficiencyOnLine(line),
				Context:     "resume",
			})
		}
	}
	return entries
}

// proficiencyOnLine returns the strongest proficiency level mentioned on the
// line, or empty when none is present.
func proficiencyOnLine(line string) string {
	for _, level := range proficiencyLevels {
		if strings.Contains(line, level.Token) {
			return level.Level
		}
	}
	return ""
}
