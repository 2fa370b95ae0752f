package extraction

import (
	"regexp"
	"strings"

	"github.com/marcelo/profile-sync/internal/profile"
)

// skillMatchers are compiled once per keyword; word boundaries keep short
// names like "Go" and "R" from matching inside other words.
var (
	languageMatchers = compileSkillMatchers(programmingLanguages)
	toolMatchers     = compileSkillMatchers(toolsAndTechnologies)
)

func compileSkillMatchers(keywords []string) []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, len(keywords))
	for i, keyword := range keywords {
		pattern := regexp.QuoteMeta(strings.ToLower(keyword))
		// \b does not sit next to symbols like "+" or "#", so anchor those
		// keywords on the left only.
		if endsWithWordChar(keyword) {
			pattern = `\b` + pattern + `\b`
		} else {
			pattern = `\b` + pattern
		}
		matchers[i] = regexp.MustCompile(pattern)
	}
	return matchers
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[len(s)-1])
	return r == '_' || (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ExtractTechnicalSkills returns the programming languages and tools from the
// known keyword lists that appear in the text, or nil when none do so the
// fragment leaves the record's technical skills untouched on merge.
func ExtractTechnicalSkills(text string) *profile.TechnicalSkills {
	lower := strings.ToLower(text)

	languages := matchKeywords(lower, programmingLanguages, languageMatchers)
	tools := matchKeywords(lower, toolsAndTechnologies, toolMatchers)

	if len(languages) == 0 && len(tools) == 0 {
		return nil
	}
	return &profile.TechnicalSkills{
		ProgrammingLanguages: languages,
		ToolsAndTechnologies: tools,
	}
}

func matchKeywords(lower string, keywords []string, matchers []*regexp.Regexp) []string {
	var found []string
	for i, matcher := range matchers {
		if matcher.MatchString(lower) {
			found = append(found, keywords[i])
		}
	}
	return found
}
