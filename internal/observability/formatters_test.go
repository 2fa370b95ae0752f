package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcelo/profile-sync/internal/githubstats"
	"github.com/marcelo/profile-sync/internal/profile"
)

func TestPrintFragment(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintFragment(&profile.Fragment{
		Name:    "Alice Souza",
		Contact: []string{"alice@example.com", "+5511987654321"},
		Certifications: map[string]profile.Certification{
			"aws_ccp": {Name: "AWS Certified Cloud Practitioner"},
		},
		Languages: []profile.LanguageEntry{{Name: "English", Proficiency: "Fluent"}},
	})

	output := buf.String()
	assert.Contains(t, output, "EXTRACTED FRAGMENT")
	assert.Contains(t, output, "Alice Souza")
	assert.Contains(t, output, "alice@example.com")
	assert.Contains(t, output, "Certifications (1):")
	assert.Contains(t, output, "English (Fluent)")
}

func TestPrintFragment_Nil(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintFragment(nil)
	assert.Empty(t, buf.String())
}

func TestDiff(t *testing.T) {
	before := profile.NewRecord()
	before.Contact = []string{"alice@example.com"}

	after := profile.NewRecord()
	after.Contact = []string{"alice@example.com", "+5511987654321"}
	after.Certifications["aws_ccp"] = profile.Certification{Name: "AWS Certified Cloud Practitioner"}
	after.TechnicalSkills = &profile.TechnicalSkills{ProgrammingLanguages: []string{"Go"}}

	delta := Diff(before, after)
	assert.Equal(t, 1, delta.ContactsAdded)
	assert.Equal(t, 1, delta.CertificationsAdded)
	assert.Equal(t, 0, delta.EducationAdded)
	assert.True(t, delta.SkillsReplaced)
	assert.False(t, delta.Empty())
}

func TestDiff_NoChanges(t *testing.T) {
	record := profile.NewRecord()
	record.Contact = []string{"alice@example.com"}

	delta := Diff(record, record)
	assert.True(t, delta.Empty())
}

func TestPrintMergeSummary(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintMergeSummary(MergeDelta{ContactsAdded: 2, CertificationsAdded: 1})

	output := buf.String()
	assert.Contains(t, output, "MERGE SUMMARY")
	assert.Contains(t, output, "Contacts added: 2")
	assert.Contains(t, output, "Certifications added: 1")
	assert.NotContains(t, output, "Education added")
}

func TestPrintMergeSummary_Empty(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintMergeSummary(MergeDelta{})

	assert.Contains(t, buf.String(), "already up to date")
}

func TestPrintGitHubStats(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintGitHubStats(&githubstats.Stats{
		User:        "alice",
		PublicRepos: 12,
		TotalStars:  34,
		Followers:   7,
		Languages: []githubstats.LanguageShare{
			{Name: "Go", Bytes: 5000},
			{Name: "Shell", Bytes: 100},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "GITHUB STATS")
	assert.Contains(t, output, "@alice")
	assert.Contains(t, output, "#1  Go (5000 bytes)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintFragment(&profile.Fragment{
		Contact: []string{strings.Repeat("x", 100)},
	})

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line should fit the box: %q", line)
	}
}
