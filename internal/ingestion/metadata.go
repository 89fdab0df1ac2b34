package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentType distinguishes the two document classes the engine accepts.
type DocumentType string

// Supported document types.
const (
	DocumentResume DocumentType = "resume"
	DocumentJob    DocumentType = "job_description"
)

// Metadata describes an ingested document.
type Metadata struct {
	DocumentID uuid.UUID    `json:"document_id"`
	Type       DocumentType `json:"type"`
	Source     string       `json:"source,omitempty"` // originating file path
	Timestamp  string       `json:"timestamp"`        // RFC3339 format
	Hash       string       `json:"hash"`             // SHA256 hex digest of the content
	Lines      int          `json:"lines"`
	Bytes      int          `json:"bytes"`
}

// NewMetadata creates Metadata for a document with a fresh id and current
// timestamp.
func NewMetadata(docType DocumentType, source, content string) *Metadata {
	return &Metadata{
		DocumentID: uuid.New(),
		Type:       docType,
		Source:     source,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Lines:      strings.Count(content, "\n") + 1,
		Bytes:      len(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
