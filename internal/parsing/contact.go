package parsing

import (
	"regexp"
	"strings"
)

// Phone patterns are tried in fixed priority order; the first match across
// the whole text wins and no further numbers are looked for.
var phonePatterns = []*regexp.Regexp{
	// +91 98765 43210 or +91-98765-43210 (Indian mobile format)
	regexp.MustCompile(`\+91[\s\-.]?\d{5}[\s\-.]?\d{5}`),
	// (022) 23456789 or 987-654-3210 (generic grouped format)
	regexp.MustCompile(`\(?\d{3,4}\)?[\s\-.]?\d{3,5}[\s\-.]?\d{3,5}`),
	// flat 10-digit run
	regexp.MustCompile(`\d{10}`),
}

var nonDigitPattern = regexp.MustCompile(`\D`)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

// ExtractPhoneNumber returns the first phone-shaped match in the text,
// normalized to digits only (separators and any leading + are stripped).
// Returns an empty string when no pattern matches.
func ExtractPhoneNumber(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, re := range phonePatterns {
		if match := re.FindString(text); match != "" {
			return nonDigitPattern.ReplaceAllString(match, "")
		}
	}
	return ""
}

// ExtractEmails collects every email address in the text, lower-cased and
// deduplicated in first-occurrence order. The first deduplicated match is
// the primary email; the rest are returned as a never-nil slice.
func ExtractEmails(text string) (string, []string) {
	others := []string{}
	if strings.TrimSpace(text) == "" {
		return "", others
	}

	seen := make(map[string]struct{})
	emails := []string{}
	for _, match := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(strings.TrimSpace(match))
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	if len(emails) == 0 {
		return "", others
	}
	return emails[0], append(others, emails[1:]...)
}
