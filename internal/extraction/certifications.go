package extraction

import (
	"regexp"
	"strings"

	"github.com/marcelo/profile-sync/internal/profile"
)

// sectionState tracks whether the line scan is currently inside a recognized
// certification section. It lives for a single pass and is never persisted.
type sectionState int

const (
	stateOutside sectionState = iota
	stateInCertifications
)

var (
	// authorBylineRe matches a two-capitalized-word person name, the usual
	// byline that follows an exported profile's certification block.
	authorBylineRe = regexp.MustCompile(`^[A-Z][a-zçãéíóú]+ [A-Z][a-zçãéíóú]+$`)

	// pageFooterRe matches exported-document page footers in both languages.
	pageFooterRe = regexp.MustCompile(`(?i)^page \d+( of \d+)?$|^página \d+( de \d+)?$`)

	// durationRe matches lone duration figures such as "6 months" / "3 meses".
	durationRe = regexp.MustCompile(`(?i)^\d+\s+(months?|meses|mês)$`)

	// wordNumberRe matches a loose "words + trailing number" shape common in
	// course titles ("Azure Fundamentals AZ 900", "Python 3").
	wordNumberRe = regexp.MustCompile(`^[A-Za-z][A-Za-z .&/+#-]*\d+$`)

	// certLabelRe strips a leading "certificate:"-style label off a candidate.
	certLabelRe = regexp.MustCompile(`(?i)^(certificate|certification|course|training|certificado|certificação|curso|treinamento)\s*:\s*`)
)

// ExtractCertifications recovers certification entries from the raw line
// stream. Two independent heuristics run over the same text and their results
// are unioned first-writer-wins: a stateful line scan, and a block pass that
// collects the lines directly under a certification-section header. Resume
// layouts vary enough that either pass alone has false negatives.
func ExtractCertifications(text string) map[string]profile.Certification {
	lines := strings.Split(text, "\n")

	certs := scanCertificationLines(lines)
	for key, cert := range certificationBlocks(lines) {
		if _, exists := certs[key]; !exists {
			certs[key] = cert
		}
	}
	return certs
}

// scanCertificationLines is a single forward scan maintaining section state.
// Certification names are not identifiable by regex alone; the weakest rule
// only fires while the scan knows it is inside a certification section. A
// consumed-marker set records continuation lines merged into the previous
// candidate so they are never reprocessed on their own.
func scanCertificationLines(lines []string) map[string]profile.Certification {
	certs := map[string]profile.Certification{}
	state := stateOutside
	consumed := make([]bool, len(lines))

	for i, raw := range lines {
		if consumed[i] {
			continue
		}
		line := strings.TrimSpace(raw)
		if len(line) < 3 {
			continue
		}
		lower := strings.ToLower(line)

		// Section header: enter the section and consume the header line
		// itself, it is not a certificate name.
		if containsAny(lower, certSectionHeaders) {
			state = stateInCertifications
			continue
		}

		// Exit signals: another known section header or an author byline.
		// Clear state first, then let the line fall through the remaining
		// rules without the contextual fallback.
		if state == stateInCertifications &&
			(containsAny(lower, certExitHeaders) || authorBylineRe.MatchString(line)) {
			state = stateOutside
		}

		if isStructuralNoise(line, lower) {
			continue
		}

		if !isCertificationCandidate(line, lower, state) {
			continue
		}

		// Look-ahead merge: a short or lower-case-starting next line is a
		// wrapped continuation of this candidate's title.
		candidate := line
		if next, ok := continuationLine(lines, i+1); ok {
			candidate = candidate + " " + next
			consumed[i+1] = true
		}

		candidate = strings.TrimSpace(certLabelRe.ReplaceAllString(candidate, ""))

		// The continuation heuristic must never produce a degenerate name.
		if isDegenerateCertName(candidate) {
			continue
		}
		if len(candidate) <= 3 {
			continue
		}

		key := profile.DeriveKey(candidate)
		if key == "" {
			continue
		}
		if _, exists := certs[key]; !exists {
			certs[key] = profile.Certification{
				Name:                candidate,
				ExtractedFromResume: true,
			}
		}
	}

	return certs
}

// certificationBlocks locates each certification-section header and collects
// the contiguous lines under it, up to the next blank line or the next
// capitalized section header.
func certificationBlocks(lines []string) map[string]profile.Certification {
	certs := map[string]profile.Certification{}

	for i, raw := range lines {
		lower := strings.ToLower(strings.TrimSpace(raw))
		if lower == "" || !containsAny(lower, certSectionHeaders) {
			continue
		}

		for j := i + 1; j < len(lines); j++ {
			line := strings.TrimSpace(lines[j])
			if line == "" {
				break
			}
			blockLower := strings.ToLower(line)
			if isSectionHeaderLine(line, blockLower) {
				break
			}
			if len(line) <= 3 || isStructuralNoise(line, blockLower) {
				continue
			}
			// Fold wrapped continuation lines into this entry so both
			// passes key the same merged title.
			for {
				next, ok := continuationLine(lines, j+1)
				if !ok {
					break
				}
				line = line + " " + next
				j++
			}
			name := strings.TrimSpace(certLabelRe.ReplaceAllString(line, ""))
			if isDegenerateCertName(name) || len(name) <= 3 {
				continue
			}
			key := profile.DeriveKey(name)
			if key == "" {
				continue
			}
			if _, exists := certs[key]; !exists {
				certs[key] = profile.Certification{
					Name:                name,
					ExtractedFromResume: true,
				}
			}
		}
	}

	return certs
}

// isCertificationCandidate applies the candidate rules in decreasing order of
// precision. The contextual fallback is the weakest signal and only fires
// inside a tracked certification section.
func isCertificationCandidate(line, lower string, state sectionState) bool {
	if containsAny(lower, certActionKeywords) {
		return true
	}
	if containsAny(lower, certProviders) {
		return true
	}
	if wordNumberRe.MatchString(line) && isTitleCased(line) {
		return true
	}
	if state == stateInCertifications {
		return !isNumericLine(line) && line != lower && len(line) > 3
	}
	return false
}

// isStructuralNoise rejects page footers, bare section-title restatements,
// lone duration figures and language-section headers.
func isStructuralNoise(line, lower string) bool {
	if pageFooterRe.MatchString(line) || durationRe.MatchString(line) {
		return true
	}
	for _, title := range []string{
		"certification", "certifications",
		"certificação", "certificações",
		"certificate", "certificates",
		"certificado", "certificados",
	} {
		if lower == title {
			return true
		}
	}
	for _, header := range languageSectionHeaders {
		if lower == header {
			return true
		}
	}
	return false
}

// continuationLine reports whether lines[idx] is a wrapped continuation of
// the previous candidate's title: short, starting lower-case, or the lone
// token "Science" (degree names wrap there surprisingly often). Section
// headers and structural noise are never continuations, however short.
func continuationLine(lines []string, idx int) (string, bool) {
	if idx >= len(lines) {
		return "", false
	}
	next := strings.TrimSpace(lines[idx])
	if next == "" {
		return "", false
	}
	lower := strings.ToLower(next)
	if containsAny(lower, certSectionHeaders) || containsAny(lower, certExitHeaders) ||
		authorBylineRe.MatchString(next) || isStructuralNoise(next, lower) {
		return "", false
	}
	if len(next) < 15 || startsLowerCase(next) || next == "Science" {
		return next, true
	}
	return "", false
}

// isDegenerateCertName rejects candidates that are just the generic section
// keyword, or the bare word "Science" produced by the continuation rule.
func isDegenerateCertName(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "certification", "certifications", "certificação", "certificações",
		"certificate", "certificates", "certificado", "certificados",
		"course", "curso", "training", "treinamento", "science":
		return true
	}
	return false
}

// isSectionHeaderLine reports whether a line terminates a certification block:
// a known section header, or a short capitalized title line.
func isSectionHeaderLine(line, lower string) bool {
	if containsAny(lower, certExitHeaders) && len(line) < 40 {
		return true
	}
	return authorBylineRe.MatchString(line)
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func isNumericLine(line string) bool {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '.' || r == ',' || r == '-' || r == '/' {
			return -1
		}
		return r
	}, line)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func startsLowerCase(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	return r >= 'a' && r <= 'z'
}

// isTitleCased reports whether a line looks like a title: it starts with an
// upper-case letter and is not entirely lower-case. Deliberately loose; it
// only gates the word+number rule.
func isTitleCased(line string) bool {
	if line == "" {
		return false
	}
	first := rune(line[0])
	return first >= 'A' && first <= 'Z' && line != strings.ToLower(line)
}
