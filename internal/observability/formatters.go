// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocumentResult outputs a human-readable summary of one document's
// extraction outcome: the error for a failed document, otherwise the
// extracted fields with long term lists truncated.
func (p *Printer) PrintDocumentResult(result types.DocumentResult) {
	if result.Failed() {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("File:   %s\n", result.File))
		sb.WriteString(fmt.Sprintf("Error:  %s", result.Error))
		p.printBox("DOCUMENT FAILED", sb.String())
		return
	}
	if result.Result == nil {
		return
	}
	extracted := result.Result

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", result.File))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", formatName(extracted.ParsedName)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(extracted.PhoneNumber)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(extracted.PrimaryEmail)))
	if len(extracted.OtherEmails) > 0 {
		sb.WriteString(fmt.Sprintf("Other:    %s\n", strings.Join(extracted.OtherEmails, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Location: %s\n", formatLocation(extracted.Location)))
	sb.WriteString("\n")
	appendTermList(&sb, "Skills", extracted.Skills)
	appendTermList(&sb, "Qualifications", extracted.Qualifications)

	p.printBox("EXTRACTED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// formatName joins the non-empty name parts for display.
func formatName(name types.ParsedName) string {
	parts := []string{}
	for _, part := range []string{name.FirstName, name.MiddleName, name.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// formatLocation joins city and state for display.
func formatLocation(loc types.Location) string {
	if loc.City == "" && loc.State == "" {
		return "-"
	}
	return strings.TrimSuffix(strings.TrimSpace(loc.City+", "+loc.State), ",")
}

// orDash substitutes a dash for an empty field.
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

// appendTermList writes a bulleted term list, truncated to maxItemsToShow.
func appendTermList(sb *strings.Builder, label string, terms []string) {
	if len(terms) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(terms), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", terms[i]))
	}
	if len(terms) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(terms)-maxItemsToShow))
	}
}
