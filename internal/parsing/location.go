package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	// "City, State, Country"; the country segment is matched but discarded.
	cityStateCountryPattern = regexp.MustCompile(`\b([A-Za-z]+(?: [A-Za-z]+)*),\s*([A-Za-z]+(?: [A-Za-z]+)*),\s*([A-Za-z]+)\b`)
	// Fallback: "City, State" without a country (e.g. local addresses).
	cityStatePattern = regexp.MustCompile(`\b([A-Za-z]+(?: [A-Za-z]+)*),\s*([A-Za-z]+(?: [A-Za-z]+)*)\b`)
)

// ExtractLocation returns the first "City, State, Country" match in the
// text, falling back to "City, State"; both fields are empty when neither
// shape occurs. The heuristic is purely syntactic with no gazetteer
// validation, so any comma-separated phrase of the right shape, such as an
// address line or a list in a sentence, will match as a false positive. Only the
// first match in document order is used.
func ExtractLocation(text string) types.Location {
	if m := cityStateCountryPattern.FindStringSubmatch(text); m != nil {
		return types.Location{
			City:  strings.TrimSpace(m[1]),
			State: strings.TrimSpace(m[2]),
		}
	}
	if m := cityStatePattern.FindStringSubmatch(text); m != nil {
		return types.Location{
			City:  strings.TrimSpace(m[1]),
			State: strings.TrimSpace(m[2]),
		}
	}
	return types.Location{}
}
