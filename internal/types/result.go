// Package types defines the structured records produced by resume field extraction.
package types

import "github.com/google/uuid"

// ParsedName holds the name parts recovered from the top of a resume.
// All fields are present; unknown parts are empty strings.
//
// FatherName always mirrors MiddleName: treating a parsed middle name as the
// father's name is a regional resume convention, carried over deliberately
// as an explicit mapping rather than silently "fixed".
type ParsedName struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	FatherName string `json:"fatherName"`
}

// ContactInfo holds the phone number and email addresses found in the text.
// Emails are lower-cased and deduplicated; OtherEmails never contains
// PrimaryEmail and follows first-occurrence order in the text.
type ContactInfo struct {
	PhoneNumber  string   `json:"phoneNumber"`
	PrimaryEmail string   `json:"primaryEmail"`
	OtherEmails  []string `json:"otherEmails"`
}

// Location holds the city/state pair recovered from a comma-delimited phrase.
// Both fields are empty when nothing matched.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// ExtractionResult is the combined record for one document. The embedded
// groups flatten into the wire format, so a marshaled result carries exactly
// the fields firstName, middleName, lastName, fatherName, phoneNumber,
// primaryEmail, otherEmails, qualifications, skills, city, state.
type ExtractionResult struct {
	ParsedName
	ContactInfo
	Qualifications []string `json:"qualifications"`
	Skills         []string `json:"skills"`
	Location
}

// DocumentResult is the per-document outcome of a batch run. Exactly one of
// Result or Error is set: a document that failed ingestion carries the
// failure message instead of a result, and never aborts the batch.
type DocumentResult struct {
	DocumentID uuid.UUID         `json:"documentId"`
	File       string            `json:"file,omitempty"`
	Result     *ExtractionResult `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Failed reports whether this document produced an error instead of a result.
func (r DocumentResult) Failed() bool {
	return r.Error != ""
}
