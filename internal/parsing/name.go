// Package parsing implements the deterministic field-extraction heuristics
// that turn recognized resume text into typed fields. Every function here is
// a total, pure function of its input string: noisy or non-resume text
// degrades to empty values, never to an error.
package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// nameSearchLines bounds how far from the top the name is looked for.
	nameSearchLines = 14
	// minNameLineLength filters out fragments too short to be a full name.
	minNameLineLength = 5
)

// sectionKeywords disqualify a line from being the name line; a resume
// section heading is never the candidate's name.
var sectionKeywords = []string{"summary", "education", "contact", "experience", "skills"}

// ExtractName locates the candidate's full name near the top of the text and
// splits it into first/middle/last/father parts. All four fields are empty
// strings when no line qualifies.
func ExtractName(text string) types.ParsedName {
	line := nameLineFromTop(text)
	if strings.TrimSpace(line) == "" {
		return types.ParsedName{}
	}
	return splitNameParts(strings.Fields(line))
}

// nameLineFromTop scans the first lines of the text for the best candidate
// name line: letters and spaces only, no digits, no section keyword, 2-4
// words, every word starting with an uppercase letter. More words win; on a
// tie the earlier line is kept (strictly-greater comparison).
func nameLineFromTop(text string) string {
	lines := splitLines(text)

	best := ""
	bestScore := 0
	for i := 0; i < len(lines) && i < nameSearchLines; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) < minNameLineLength {
			continue
		}
		if !lettersAndSpacesOnly(line) {
			continue
		}
		if containsSectionKeyword(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !allWordsCapitalized(words) {
			continue
		}
		if len(words) > bestScore {
			best = line
			bestScore = len(words)
		}
	}
	return best
}

// splitLines splits on CR and LF, dropping empty segments so CRLF endings
// and blank lines do not consume slots in the search window.
func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// lettersAndSpacesOnly reports whether the line contains no digits and no
// punctuation: every character must be a letter or whitespace.
func lettersAndSpacesOnly(line string) bool {
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// containsSectionKeyword reports whether the line contains a reserved
// section keyword, case-insensitively, as a substring.
func containsSectionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range sectionKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// allWordsCapitalized reports whether every word starts with an uppercase letter.
func allWordsCapitalized(words []string) bool {
	for _, w := range words {
		first := []rune(w)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

// splitNameParts maps the whitespace-split words of the winning line onto
// the fixed four-field record. With four or more words the middle name is
// the inner words joined as-is, without per-word re-capitalization. The
// father name is assigned from the middle name in this one place.
func splitNameParts(parts []string) types.ParsedName {
	var name types.ParsedName
	switch {
	case len(parts) == 0:
		return name
	case len(parts) == 1:
		name.FirstName = capitalize(parts[0])
	case len(parts) == 2:
		name.FirstName = capitalize(parts[0])
		name.LastName = capitalize(parts[1])
	case len(parts) == 3:
		name.FirstName = capitalize(parts[0])
		name.MiddleName = capitalize(parts[1])
		name.LastName = capitalize(parts[2])
	default:
		name.FirstName = capitalize(parts[0])
		name.MiddleName = strings.Join(parts[1:len(parts)-1], " ")
		name.LastName = capitalize(parts[len(parts)-1])
	}
	name.FatherName = name.MiddleName
	return name
}

// capitalize uppercases the first letter of a word and lowercases the rest.
func capitalize(word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}
	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
