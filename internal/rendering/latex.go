// Package rendering renders a profile record into a LaTeX resume document.
package rendering

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/marcelo/profile-sync/internal/profile"
)

// TemplateData is the flattened view of a profile record handed to the
// LaTeX template.
type TemplateData struct {
	Name           string
	ContactLine    string
	Facts          []string
	Education      []profile.Education
	Experience     []profile.Experience
	Certifications []profile.Certification
	Languages      []profile.LanguageEntry
	Skills         *profile.TechnicalSkills
}

// Render renders a record through the LaTeX template at templatePath; an
// empty path uses the built-in default template.
func Render(record *profile.Record, templatePath string) (string, error) {
	if record == nil {
		return "", &RenderError{Message: "nil record"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(record)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}

func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   func(items []string) string { return strings.Join(items, ", ") },
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// buildTemplateData flattens record maps into name-sorted slices so the
// rendered document is deterministic across runs.
func buildTemplateData(record *profile.Record) *TemplateData {
	data := &TemplateData{
		Name:        record.Name,
		ContactLine: strings.Join(record.Contact, " | "),
		Facts:       record.Facts,
		Languages:   record.Languages,
		Skills:      record.TechnicalSkills,
	}

	for _, edu := range sortedValues(record.Education, func(e profile.Education) string { return e.Institution }) {
		data.Education = append(data.Education, edu)
	}
	for _, exp := range sortedValues(record.Experience, func(e profile.Experience) string { return e.Company + e.Title }) {
		data.Experience = append(data.Experience, exp)
	}
	for _, cert := range sortedValues(record.Certifications, func(c profile.Certification) string { return c.Name }) {
		data.Certifications = append(data.Certifications, cert)
	}
	return data
}

func sortedValues[V any](m map[string]V, sortKey func(V) string) []V {
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		return sortKey(values[i]) < sortKey(values[j])
	})
	return values
}

// EscapeLaTeX escapes special LaTeX characters in text.
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
