// Package merge combines freshly extracted fragments into an existing
// profile record without ever clobbering data that is already there.
package merge

import (
	"strings"

	"github.com/marcelo/profile-sync/internal/profile"
)

// Apply merges a fragment into a copy of the current record and returns the
// result. It is a pure function with no I/O, and it is idempotent: applying
// the same fragment twice yields the same record as applying it once.
//
// Per-category rules:
//   - contact (and other string lists): union preserving existing order,
//     appending only values not already present by exact match;
//   - languages: append only entries whose lower-cased name is unseen,
//     existing entries are never updated;
//   - keyed maps (certifications, education, experience, research,
//     projects): incoming entries under an existing key are dropped
//     silently, the existing entry wins entirely. Re-running extraction
//     must never overwrite manually curated data;
//   - technical skills: shallow merge, a sub-list present in the fragment
//     replaces the existing sub-list wholesale, absent sub-lists are left
//     untouched.
func Apply(current *profile.Record, incoming *profile.Fragment) *profile.Record {
	result := cloneRecord(current)
	if incoming == nil {
		return result
	}

	if result.Name == "" && incoming.Name != "" {
		result.Name = incoming.Name
	}

	result.Contact = unionStrings(result.Contact, incoming.Contact)
	result.Facts = unionStrings(result.Facts, incoming.Facts)
	result.Languages = unionLanguages(result.Languages, incoming.Languages)

	result.Projects = unionMap(result.Projects, incoming.Projects)
	result.Certifications = unionMap(result.Certifications, incoming.Certifications)
	result.Education = unionMap(result.Education, incoming.Education)
	result.Experience = unionMap(result.Experience, incoming.Experience)
	result.Research = unionMap(result.Research, incoming.Research)

	result.TechnicalSkills = mergeTechnicalSkills(result.TechnicalSkills, incoming.TechnicalSkills)

	return result
}

// unionStrings appends values not already present by exact match, keeping
// the existing order.
func unionStrings(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	for _, value := range existing {
		seen[value] = true
	}
	for _, value := range incoming {
		if !seen[value] {
			seen[value] = true
			existing = append(existing, value)
		}
	}
	return existing
}

// unionLanguages appends entries whose case-insensitive name is unseen.
func unionLanguages(existing, incoming []profile.LanguageEntry) []profile.LanguageEntry {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	for _, entry := range existing {
		seen[strings.ToLower(entry.Name)] = true
	}
	for _, entry := range incoming {
		key := strings.ToLower(entry.Name)
		if !seen[key] {
			seen[key] = true
			existing = append(existing, entry)
		}
	}
	return existing
}

// unionMap shallow-merges incoming entries, first writer wins. An incoming
// key already present is dropped, not merged field-by-field.
func unionMap[V any](existing, incoming map[string]V) map[string]V {
	if len(incoming) == 0 {
		return existing
	}
	if existing == nil {
		existing = make(map[string]V, len(incoming))
	}
	for key, value := range incoming {
		if _, present := existing[key]; !present {
			existing[key] = value
		}
	}
	return existing
}

// mergeTechnicalSkills replaces sub-lists present in the fragment wholesale
// and leaves absent sub-lists untouched.
func mergeTechnicalSkills(existing, incoming *profile.TechnicalSkills) *profile.TechnicalSkills {
	if incoming == nil {
		return existing
	}
	if existing == nil {
		existing = &profile.TechnicalSkills{}
	}
	if incoming.OperatingSystems != nil {
		existing.OperatingSystems = append([]string(nil), incoming.OperatingSystems...)
	}
	if incoming.ProgrammingLanguages != nil {
		existing.ProgrammingLanguages = append([]string(nil), incoming.ProgrammingLanguages...)
	}
	if incoming.ToolsAndTechnologies != nil {
		existing.ToolsAndTechnologies = append([]string(nil), incoming.ToolsAndTechnologies...)
	}
	if incoming.AreasOfExpertise != nil {
		existing.AreasOfExpertise = append([]string(nil), incoming.AreasOfExpertise...)
	}
	return existing
}

// cloneRecord deep-copies the parts of a record the merge may touch so the
// caller's snapshot is never mutated.
func cloneRecord(rec *profile.Record) *profile.Record {
	if rec == nil {
		return profile.NewRecord()
	}
	clone := *rec
	clone.Contact = append([]string(nil), rec.Contact...)
	clone.Facts = append([]string(nil), rec.Facts...)
	clone.Languages = append([]profile.LanguageEntry(nil), rec.Languages...)
	clone.Projects = cloneMap(rec.Projects)
	clone.Certifications = cloneMap(rec.Certifications)
	clone.Education = cloneMap(rec.Education)
	clone.Experience = cloneMap(rec.Experience)
	clone.Research = cloneMap(rec.Research)
	if rec.TechnicalSkills != nil {
		skills := *rec.TechnicalSkills
		skills.OperatingSystems = append([]string(nil), rec.TechnicalSkills.OperatingSystems...)
		skills.ProgrammingLanguages = append([]string(nil), rec.TechnicalSkills.ProgrammingLanguages...)
		skills.ToolsAndTechnologies = append([]string(nil), rec.TechnicalSkills.ToolsAndTechnologies...)
		skills.AreasOfExpertise = append([]string(nil), rec.TechnicalSkills.AreasOfExpertise...)
		clone.TechnicalSkills = &skills
	}
	return &clone
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	clone := make(map[string]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}
