package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContacts_Email(t *testing.T) {
	contacts := ExtractContacts("Contact: alice@example.com\nPhone below")
	assert.Equal(t, []string{"alice@example.com"}, contacts)
}

func TestExtractContacts_DedupKeepsFirstSeenOrder(t *testing.T) {
	text := "alice@example.com\nsome text\nalice@example.com\nbob@example.com"
	contacts := ExtractContacts(text)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, contacts)
}

func TestExtractContacts_Phone(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "brazilian mobile with formatting",
			text:     "Tel: +55 (11) 98765-4321",
			expected: []string{"+5511987654321"},
		},
		{
			name:     "plain ten digits",
			text:     "call 415 555 0199 today",
			expected: []string{"4155550199"},
		},
		{
			name:     "year is not a phone",
			text:     "Graduated 2020",
			expected: []string{},
		},
		{
			name:     "year range is not a phone",
			text:     "2019 - 2023",
			expected: []string{},
		},
		{
			name:     "too many digits rejected",
			text:     "id 1234567890123456789",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContacts(tt.text))
		})
	}
}

func TestNormalizePhone_RejectsCalendarYears(t *testing.T) {
	for _, year := range []string{"1900", "1984", "2023", "2099"} {
		_, ok := normalizePhone(year)
		assert.False(t, ok, "year %s must never be accepted as a phone", year)
	}
}

func TestExtractContacts_URLs(t *testing.T) {
	contacts := ExtractContacts("see https://example.com/portfolio and mailto is not here")
	assert.Equal(t, []string{"https://example.com/portfolio"}, contacts)
}

func TestExtractContacts_SocialProfilesNormalized(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "bare linkedin path gains scheme",
			text:     "linkedin.com/in/alice-souza",
			expected: []string{"https://linkedin.com/in/alice-souza"},
		},
		{
			name:     "www prefix stripped",
			text:     "www.github.com/alice",
			expected: []string{"https://github.com/alice"},
		},
		{
			name:     "full url and social match dedup to one entry",
			text:     "https://github.com/alice\ngithub.com/alice",
			expected: []string{"https://github.com/alice"},
		},
		{
			name:     "unknown domain ignored",
			text:     "myspace.com/alice",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractContacts(tt.text))
		})
	}
}

func TestExtractContacts_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"no contact data at all",
		strings.Repeat("a@b.cd ", 10000),
		"@@@ :// 💥 \x00",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			contacts := ExtractContacts(input)
			assert.NotNil(t, contacts)
		})
	}
}
