// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/marcelo/profile-sync/internal/githubstats"
	"github.com/marcelo/profile-sync/internal/profile"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFragment outputs a human-readable summary of an extracted fragment.
func (p *Printer) PrintFragment(fragment *profile.Fragment) {
	if fragment == nil {
		return
	}

	var sb strings.Builder

	if fragment.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:  %s\n", fragment.Name))
	}

	if len(fragment.Contact) > 0 {
		sb.WriteString("Contacts:\n")
		writeItemList(&sb, fragment.Contact, maxItemsToShow)
	}

	if len(fragment.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications (%d):\n", len(fragment.Certifications)))
		names := make([]string, 0, len(fragment.Certifications))
		for _, cert := range fragment.Certifications {
			names = append(names, cert.Name)
		}
		writeItemList(&sb, names, maxItemsToShow)
	}

	if len(fragment.Languages) > 0 {
		sb.WriteString("Languages:\n")
		for _, lang := range fragment.Languages {
			sb.WriteString(fmt.Sprintf("  • %s", lang.Name))
			if lang.Proficiency != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", lang.Proficiency))
			}
			sb.WriteString("\n")
		}
	}

	if skills := fragment.TechnicalSkills; skills != nil {
		total := len(skills.OperatingSystems) + len(skills.ProgrammingLanguages) +
			len(skills.ToolsAndTechnologies) + len(skills.AreasOfExpertise)
		sb.WriteString(fmt.Sprintf("Technical skills: %d\n", total))
	}

	p.printBox("EXTRACTED FRAGMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// MergeDelta summarizes what a merge changed between two record versions.
type MergeDelta struct {
	ContactsAdded       int
	LanguagesAdded      int
	CertificationsAdded int
	EducationAdded      int
	ExperienceAdded     int
	SkillsReplaced      bool
}

// Empty reports whether the merge changed nothing.
func (d MergeDelta) Empty() bool {
	return d.ContactsAdded == 0 && d.LanguagesAdded == 0 && d.CertificationsAdded == 0 &&
		d.EducationAdded == 0 && d.ExperienceAdded == 0 && !d.SkillsReplaced
}

// Diff computes the additive delta between a record before and after a merge.
func Diff(before, after *profile.Record) MergeDelta {
	return MergeDelta{
		ContactsAdded:       len(after.Contact) - len(before.Contact),
		LanguagesAdded:      len(after.Languages) - len(before.Languages),
		CertificationsAdded: len(after.Certifications) - len(before.Certifications),
		EducationAdded:      len(after.Education) - len(before.Education),
		ExperienceAdded:     len(after.Experience) - len(before.Experience),
		SkillsReplaced:      !reflect.DeepEqual(before.TechnicalSkills, after.TechnicalSkills),
	}
}

// PrintMergeSummary outputs what changed during a merge.
func (p *Printer) PrintMergeSummary(delta MergeDelta) {
	var sb strings.Builder

	if delta.Empty() {
		sb.WriteString("No changes, record already up to date\n")
	} else {
		writeCount(&sb, "Contacts added", delta.ContactsAdded)
		writeCount(&sb, "Languages added", delta.LanguagesAdded)
		writeCount(&sb, "Certifications added", delta.CertificationsAdded)
		writeCount(&sb, "Education added", delta.EducationAdded)
		writeCount(&sb, "Experience added", delta.ExperienceAdded)
		if delta.SkillsReplaced {
			sb.WriteString("Technical skills updated\n")
		}
	}

	p.printBox("MERGE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGitHubStats outputs aggregated GitHub account statistics.
func (p *Printer) PrintGitHubStats(stats *githubstats.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:       @%s\n", stats.User))
	sb.WriteString(fmt.Sprintf("Repos:      %d public\n", stats.PublicRepos))
	sb.WriteString(fmt.Sprintf("Stars:      %d\n", stats.TotalStars))
	sb.WriteString(fmt.Sprintf("Forks:      %d\n", stats.TotalForks))
	sb.WriteString(fmt.Sprintf("Followers:  %d\n", stats.Followers))

	if len(stats.Languages) > 0 {
		sb.WriteString("\nTop languages:\n")
		count := min(len(stats.Languages), maxItemsToShow)
		for i := 0; i < count; i++ {
			share := stats.Languages[i]
			sb.WriteString(fmt.Sprintf("  #%d  %s (%d bytes)\n", i+1, share.Name, share.Bytes))
		}
		if len(stats.Languages) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.Languages)-maxItemsToShow))
		}
	}

	p.printBox("GITHUB STATS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeItemList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func writeCount(sb *strings.Builder, label string, n int) {
	if n > 0 {
		sb.WriteString(fmt.Sprintf("%s: %d\n", label, n))
	}
}
