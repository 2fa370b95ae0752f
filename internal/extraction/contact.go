package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phoneCandidateRe is deliberately loose; candidates are filtered by
	// digit count afterwards.
	phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s().\-]{4,}\d`)

	urlRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*://\S+`)

	socialRe = buildSocialRegexp(socialDomains)
)

// buildSocialRegexp compiles one pattern matching a profile path on any of
// the allow-listed professional-network hosts, with or without a scheme.
func buildSocialRegexp(domains []string) *regexp.Regexp {
	quoted := make([]string, len(domains))
	for i, d := range domains {
		quoted[i] = regexp.QuoteMeta(d)
	}
	return regexp.MustCompile(`(?:https?://)?(?:www\.)?(` + strings.Join(quoted, "|") + `)(/[A-Za-z0-9_.~/+-]+)`)
}

// ExtractContacts scans the full raw text for emails, phone numbers, URLs and
// allow-listed social-profile paths. Matches are concatenated in discovery
// order and deduplicated by exact string equality keeping the first
// occurrence. The function never fails; no matches yields an empty slice.
func ExtractContacts(text string) []string {
	contacts := []string{}
	seen := map[string]bool{}

	add := func(value string) {
		if value == "" || seen[value] {
			return
		}
		seen[value] = true
		contacts = append(contacts, value)
	}

	for _, email := range emailRe.FindAllString(text, -1) {
		add(email)
	}

	for _, candidate := range phoneCandidateRe.FindAllString(text, -1) {
		if phone, ok := normalizePhone(candidate); ok {
			add(phone)
		}
	}

	for _, raw := range urlRe.FindAllString(text, -1) {
		add(strings.TrimRight(raw, ".,;)"))
	}

	for _, m := range socialRe.FindAllStringSubmatch(text, -1) {
		host, path := m[1], strings.TrimRight(m[2], ".,;)")
		if path == "/" {
			continue
		}
		add("https://" + host + path)
	}

	return contacts
}

// normalizePhone strips formatting from a phone candidate and validates the
// digit count. Bare 2- and 4-digit sequences are rejected, as are 4-digit
// tokens in the 1900–2099 range, which are almost always years sitting next
// to dates rather than phone numbers.
func normalizePhone(candidate string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, candidate)

	// Bare 2- and 4-digit sequences are never phone numbers; the 4-digit
	// case covers calendar years (1900-2099) sitting next to dates.
	if len(digits) == 2 || len(digits) == 4 || isCalendarYear(digits) {
		return "", false
	}
	if len(digits) < 10 || len(digits) > 15 {
		return "", false
	}

	phone := strings.TrimSpace(candidate)
	if strings.HasPrefix(phone, "+") {
		return "+" + digits, true
	}
	return digits, true
}

// isCalendarYear reports whether digits is a 4-digit year between 1900 and 2099.
func isCalendarYear(digits string) bool {
	if len(digits) != 4 {
		return false
	}
	year, err := strconv.Atoi(digits)
	return err == nil && year >= 1900 && year <= 2099
}
