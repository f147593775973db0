// Package ingestion reads recognized resume text from disk and wraps it
// with document metadata. The OCR stage that produces these text dumps is
// an external collaborator; this package only models its output as one text
// blob per document.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Document is one recognized-text dump ready for extraction. Err carries a
// human-readable ingestion failure message; a document with a non-empty Err
// has no usable text and surfaces as a failure record at the batch layer
// instead of aborting the run.
type Document struct {
	ID        uuid.UUID
	Path      string
	Text      string
	Hash      string // SHA256 hex digest of the text
	Timestamp string // RFC3339 ingestion time
	Err       string
}

// ReadDocument reads a single recognized-text file into a Document. Read
// failures are recorded on the document rather than returned, so one bad
// file in a batch never stops the remaining documents.
func ReadDocument(path string) Document {
	doc := Document{
		ID:        uuid.New(),
		Path:      path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		doc.Err = fmt.Sprintf("failed to read document: %v", err)
		return doc
	}

	doc.Text = string(data)
	doc.Hash = computeHash(doc.Text)
	return doc
}

// CollectDocuments gathers the recognized-text documents under path: the
// file itself when path is a regular file, otherwise every *.txt file in
// the directory, sorted by name.
func CollectDocuments(path string) ([]Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input path %s: %w", path, err)
	}

	if !info.IsDir() {
		return []Document{ReadDocument(path)}, nil
	}

	matches, err := filepath.Glob(filepath.Join(path, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", path, err)
	}
	sort.Strings(matches)

	docs := make([]Document, 0, len(matches))
	for _, match := range matches {
		docs = append(docs, ReadDocument(match))
	}
	return docs, nil
}

// computeHash computes the SHA256 hash of content and returns the hex string.
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
