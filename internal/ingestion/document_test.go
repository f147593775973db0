package ingestion

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Smith\njohn@example.com"), 0644))

	doc := ReadDocument(path)

	assert.Empty(t, doc.Err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "John Smith\njohn@example.com", doc.Text)
	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Len(t, doc.Hash, 64) // SHA256 hex digest

	_, err := time.Parse(time.RFC3339, doc.Timestamp)
	assert.NoError(t, err)
}

func TestReadDocument_MissingFileRecordsError(t *testing.T) {
	doc := ReadDocument(filepath.Join(t.TempDir(), "missing.txt"))

	assert.NotEmpty(t, doc.Err)
	assert.Contains(t, doc.Err, "failed to read document")
	assert.Empty(t, doc.Text)
	assert.NotEqual(t, uuid.Nil, doc.ID)
}

func TestReadDocument_DeterministicHash(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(first, []byte("same content"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("same content"), 0644))

	assert.Equal(t, ReadDocument(first).Hash, ReadDocument(second).Hash)
}

func TestCollectDocuments_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe"), 0644))

	docs, err := CollectDocuments(path)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Jane Doe", docs[0].Text)
}

func TestCollectDocuments_DirectorySortedTxtOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0644))

	docs, err := CollectDocuments(dir)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "first", docs[0].Text)
	assert.Equal(t, "second", docs[1].Text)
}

func TestCollectDocuments_EmptyDirectory(t *testing.T) {
	docs, err := CollectDocuments(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCollectDocuments_MissingPath(t *testing.T) {
	_, err := CollectDocuments(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}
