// Package vocabulary loads reference term lists (skills, qualifications)
// and matches them against recognized resume text. A vocabulary is loaded
// once per run and shared read-only across documents; matching never
// re-reads the file system.
package vocabulary

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Vocabulary is an ordered, read-only list of reference terms with the
// whole-word patterns for both matching policies precompiled at
// construction time. Safe for concurrent use.
type Vocabulary struct {
	terms []string
	// patterns[i] matches terms[i] as a whole word, case-insensitively.
	// Skills matching runs them against normalized text, qualifications
	// matching against the raw text.
	rawPatterns        []*regexp.Regexp
	normalizedPatterns []*regexp.Regexp
}

// New builds a Vocabulary from the given terms. Terms are trimmed and blank
// entries dropped; duplicates are kept, in order.
func New(terms []string) Vocabulary {
	v := Vocabulary{}
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		v.terms = append(v.terms, term)
		v.rawPatterns = append(v.rawPatterns, wholeWordPattern(term))
		v.normalizedPatterns = append(v.normalizedPatterns, wholeWordPattern(strings.ToLower(term)))
	}
	return v
}

// Load reads a line-delimited vocabulary file into an ordered term list.
// A missing file (or an empty path) is not an error and yields an empty
// vocabulary, which in turn yields empty match results.
func Load(path string) (Vocabulary, error) {
	if path == "" {
		return Vocabulary{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Vocabulary{}, nil
		}
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	return New(strings.Split(string(data), "\n")), nil
}

// Terms returns a copy of the term list in vocabulary order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the number of terms.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Empty reports whether the vocabulary has no terms.
func (v Vocabulary) Empty() bool {
	return len(v.terms) == 0
}

// wholeWordPattern compiles a case-insensitive whole-word pattern for the
// term. Boundaries are non-word-character boundaries, not whitespace, so a
// matched term is never a substring of a larger word.
func wholeWordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}
