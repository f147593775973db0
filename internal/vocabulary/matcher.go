package vocabulary

import (
	"regexp"
	"strings"
)

// punctuationPattern matches every character that is neither a word
// character nor whitespace; skills normalization collapses these to spaces.
var punctuationPattern = regexp.MustCompile(`[^\w\s]`)

// MatchSkills reports which vocabulary terms occur in the text, using the
// skills policy: the text is lower-cased and punctuation is collapsed to
// spaces before whole-word matching, and results are deduplicated in
// vocabulary order. Because normalization strips symbols, terms like "C++"
// or "C#" lose their symbol characters before matching; this is a known
// limitation of the policy, kept distinct from the qualifications policy
// below rather than unified.
func (v Vocabulary) MatchSkills(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" || v.Empty() {
		return found
	}

	normalized := punctuationPattern.ReplaceAllString(strings.ToLower(text), " ")

	seen := make(map[string]struct{})
	for i, term := range v.terms {
		if !v.normalizedPatterns[i].MatchString(normalized) {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		found = append(found, term)
	}
	return found
}

// MatchQualifications reports which vocabulary terms occur in the text,
// using the qualifications policy: whole-word case-insensitive matching
// against the raw text, with no normalization and no deduplication:
// every vocabulary entry that occurs is appended, one entry per matching
// vocabulary term (not per occurrence in the text), in vocabulary order.
func (v Vocabulary) MatchQualifications(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" || v.Empty() {
		return found
	}

	for i, term := range v.terms {
		if v.rawPatterns[i].MatchString(text) {
			found = append(found, term)
		}
	}
	return found
}
