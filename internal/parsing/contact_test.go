package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhoneNumber_IndianMobileFormat(t *testing.T) {
	phone := ExtractPhoneNumber("Call me at +91 98765 43210 anytime")

	assert.Equal(t, "919876543210", phone)
}

func TestExtractPhoneNumber_IndianMobileWithHyphens(t *testing.T) {
	phone := ExtractPhoneNumber("+91-98765-43210")

	assert.Equal(t, "919876543210", phone)
}

func TestExtractPhoneNumber_GroupedFormatWithAreaCode(t *testing.T) {
	phone := ExtractPhoneNumber("Landline: (022) 2345-6789")

	assert.Equal(t, "02223456789", phone)
}

func TestExtractPhoneNumber_FlatTenDigits(t *testing.T) {
	phone := ExtractPhoneNumber("Reach me on 9876543210 after hours")

	assert.Equal(t, "9876543210", phone)
}

func TestExtractPhoneNumber_IndianFormatWinsOverGrouped(t *testing.T) {
	// Pattern priority, not text order, decides
	phone := ExtractPhoneNumber("(022) 2345-6789 or +91 98765 43210")

	assert.Equal(t, "919876543210", phone)
}

func TestExtractPhoneNumber_NoMatch(t *testing.T) {
	assert.Empty(t, ExtractPhoneNumber("no numbers here"))
}

func TestExtractPhoneNumber_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractPhoneNumber(""))
	assert.Empty(t, ExtractPhoneNumber("   \n  "))
}

func TestExtractEmails_DeduplicatesCaseInsensitively(t *testing.T) {
	primary, others := ExtractEmails("Contact: Jane.Doe@Example.com or jane@other.org, Jane.Doe@EXAMPLE.com")

	assert.Equal(t, "jane.doe@example.com", primary)
	assert.Equal(t, []string{"jane@other.org"}, others)
}

func TestExtractEmails_SingleEmail(t *testing.T) {
	primary, others := ExtractEmails("mail me: dev+resume@work.example.co.in")

	assert.Equal(t, "dev+resume@work.example.co.in", primary)
	assert.Empty(t, others)
}

func TestExtractEmails_FirstOccurrenceOrder(t *testing.T) {
	primary, others := ExtractEmails("c@c.com b@b.com a@a.com")

	assert.Equal(t, "c@c.com", primary)
	assert.Equal(t, []string{"b@b.com", "a@a.com"}, others)
}

func TestExtractEmails_NoMatch(t *testing.T) {
	primary, others := ExtractEmails("nothing that looks like an address")

	assert.Empty(t, primary)
	assert.NotNil(t, others)
	assert.Empty(t, others)
}

func TestExtractEmails_EmptyInput(t *testing.T) {
	primary, others := ExtractEmails("")

	assert.Empty(t, primary)
	assert.NotNil(t, others)
	assert.Empty(t, others)
}
