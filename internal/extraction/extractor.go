// Package extraction orchestrates the per-field extractors over recognized
// resume text and assembles the combined result records.
package extraction

import (
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/vocabulary"
)

// Extractor runs the field extractors with a fixed pair of reference
// vocabularies. Both vocabularies are loaded once by the caller and shared
// read-only across every document; the extractor holds no other state and
// is safe for concurrent use.
type Extractor struct {
	skills         vocabulary.Vocabulary
	qualifications vocabulary.Vocabulary
}

// New creates an Extractor over the given skills and qualifications
// vocabularies. Either vocabulary may be empty, in which case the
// corresponding result field is always an empty list.
func New(skills, qualifications vocabulary.Vocabulary) *Extractor {
	return &Extractor{
		skills:         skills,
		qualifications: qualifications,
	}
}

// Extract runs every field extractor over the text and assembles one
// result. The extractors are independent read-only functions of the same
// text, so any of them may come back empty on noisy or incomplete input
// without affecting the others; empty or garbage text yields a result with
// empty fields, never an error.
func (e *Extractor) Extract(text string) types.ExtractionResult {
	primaryEmail, otherEmails := parsing.ExtractEmails(text)

	return types.ExtractionResult{
		ParsedName: parsing.ExtractName(text),
		ContactInfo: types.ContactInfo{
			PhoneNumber:  parsing.ExtractPhoneNumber(text),
			PrimaryEmail: primaryEmail,
			OtherEmails:  otherEmails,
		},
		Qualifications: e.qualifications.MatchQualifications(text),
		Skills:         e.skills.MatchSkills(text),
		Location:       parsing.ExtractLocation(text),
	}
}
