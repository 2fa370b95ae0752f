package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelo/profile-sync/internal/profile"
)

const sampleResume = `Alice Souza
São Paulo, Brazil
alice@example.com
+55 (11) 98765-4321
linkedin.com/in/alice-souza
github.com/alice

Formação
Universidade de São Paulo
Bacharelado em Ciência da Computação

Licenças e certificados
AWS Certified Cloud Practitioner
Microsoft Azure
fundamentals

Experiência
Empresa Exemplo

Idiomas
Português (nativo)
English (fluent)

Skills: Python, Go, Docker, Kubernetes, PostgreSQL
`

func TestExtract_FullResume(t *testing.T) {
	fragment := Extract(sampleResume)
	require.NotNil(t, fragment)

	assert.Equal(t, []string{
		"alice@example.com",
		"+5511987654321",
		"https://linkedin.com/in/alice-souza",
		"https://github.com/alice",
	}, fragment.Contact)

	require.Contains(t, fragment.Education, "bsc_computer_science_usp")
	assert.True(t, fragment.Education["bsc_computer_science_usp"].ExtractedFromResume)

	assert.Contains(t, fragment.Certifications, "aws_certified_cloud_practitioner")
	assert.Contains(t, fragment.Certifications, "microsoft_azure_fundamentals")

	names := make([]string, 0, len(fragment.Languages))
	for _, lang := range fragment.Languages {
		names = append(names, lang.Name)
	}
	assert.ElementsMatch(t, []string{"Portuguese", "English"}, names)

	require.NotNil(t, fragment.TechnicalSkills)
	assert.Contains(t, fragment.TechnicalSkills.ProgrammingLanguages, "Python")
	assert.Contains(t, fragment.TechnicalSkills.ProgrammingLanguages, "Go")
	assert.Contains(t, fragment.TechnicalSkills.ToolsAndTechnologies, "Docker")
	assert.Contains(t, fragment.TechnicalSkills.ToolsAndTechnologies, "PostgreSQL")
}

func TestExtract_EmptyInput(t *testing.T) {
	fragment := Extract("")
	require.NotNil(t, fragment)
	assert.Empty(t, fragment.Contact)
	assert.Empty(t, fragment.Education)
	assert.Empty(t, fragment.Certifications)
	assert.Empty(t, fragment.Languages)
	assert.Nil(t, fragment.TechnicalSkills)
}

func TestExtract_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\x00\x01\x02",
		strings.Repeat("Certifications\n", 5000),
		strings.Repeat("x", 1<<20),
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Extract(input) })
	}
}

func TestExtractLanguages_DedupByName(t *testing.T) {
	text := "Inglês (avançado)\nEnglish - advanced\nPortuguês nativo"
	languages := ExtractLanguages(text)

	require.Len(t, languages, 2)
	assert.Equal(t, "English", languages[0].Name)
	assert.Equal(t, "Advanced", languages[0].Proficiency)
	assert.Equal(t, "Portuguese", languages[1].Name)
	assert.Equal(t, "Native", languages[1].Proficiency)
}

func TestExtractTechnicalSkills_WordBoundaries(t *testing.T) {
	// "Go" must not match inside "Google" nor "R" inside "React".
	skills := ExtractTechnicalSkills("Worked at Google on React dashboards")
	require.NotNil(t, skills)
	assert.NotContains(t, skills.ProgrammingLanguages, "Go")
	assert.NotContains(t, skills.ProgrammingLanguages, "R")
	assert.Equal(t, []string{"React"}, skills.ToolsAndTechnologies)
}

func TestExtractTechnicalSkills_NilWhenNothingFound(t *testing.T) {
	assert.Nil(t, ExtractTechnicalSkills("nothing technical here"))
}

func TestExtractEducation_RequiresBothPhrases(t *testing.T) {
	assert.Empty(t, ExtractEducation("studied at universidade de são paulo"))
	assert.Empty(t, ExtractEducation("ciência da computação enthusiast"))

	entries := ExtractEducation("Universidade de São Paulo — Ciência da Computação")
	require.Contains(t, entries, "bsc_computer_science_usp")
	entry := entries["bsc_computer_science_usp"]
	assert.Equal(t, "Universidade de São Paulo", entry.Institution)
	assert.True(t, entry.InProgress)
}

func TestExtract_FragmentMergesCleanly(t *testing.T) {
	// An extraction fragment must be safe to merge repeatedly; spot-check
	// that keyed entries use derived keys so re-extraction collides with
	// itself rather than duplicating.
	fragment := Extract(sampleResume)
	for key := range fragment.Certifications {
		assert.Equal(t, profile.DeriveKey(key), key)
	}
	for key := range fragment.Education {
		assert.Equal(t, profile.DeriveKey(key), key)
	}
}
