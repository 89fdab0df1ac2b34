package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	content := "# Jane Doe\njane@example.com\n"

	meta := NewMetadata(DocumentResume, "resume.md", content)

	assert.NotEqual(t, uuid.Nil, meta.DocumentID)
	assert.Equal(t, DocumentResume, meta.Type)
	assert.Equal(t, "resume.md", meta.Source)
	assert.Equal(t, 3, meta.Lines)
	assert.Equal(t, len(content), meta.Bytes)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}

func TestMetadataHashIsStable(t *testing.T) {
	first := NewMetadata(DocumentJob, "job.txt", "same content")
	second := NewMetadata(DocumentJob, "job.txt", "same content")
	other := NewMetadata(DocumentJob, "job.txt", "different content")

	assert.Equal(t, first.Hash, second.Hash)
	assert.NotEqual(t, first.Hash, other.Hash)
	assert.Len(t, first.Hash, 64)
}

func TestMetadataToJSON(t *testing.T) {
	meta := NewMetadata(DocumentJob, "job.txt", "content")

	data, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "job_description", decoded["type"])
	assert.Equal(t, meta.Hash, decoded["hash"])
	assert.Equal(t, "job.txt", decoded["source"])
}
