// Package extraction implements the heuristic resume-text extraction engine:
// a rule-based classifier that recovers contact information, education,
// certifications, spoken languages and technical skills from an unstructured
// line stream using regular expressions, positional heuristics and a small
// section-tracking state machine. There is no external NLP model anywhere in
// this package and no I/O; every extractor is a total function over its input.
package extraction

import "github.com/marcelo/profile-sync/internal/profile"

// Extract runs every extractor over the raw resume text and assembles the
// results into a fragment. It terminates and never panics for any input;
// extractors that find nothing leave their fragment field absent, which the
// merge engine treats as a no-op.
func Extract(text string) *profile.Fragment {
	fragment := &profile.Fragment{}

	if contacts := ExtractContacts(text); len(contacts) > 0 {
		fragment.Contact = contacts
	}
	if education := ExtractEducation(text); len(education) > 0 {
		fragment.Education = education
	}
	if certs := ExtractCertifications(text); len(certs) > 0 {
		fragment.Certifications = certs
	}
	if languages := ExtractLanguages(text); len(languages) > 0 {
		fragment.Languages = languages
	}
	fragment.TechnicalSkills = ExtractTechnicalSkills(text)

	return fragment
}
