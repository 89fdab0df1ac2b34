package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	innerSpace     = regexp.MustCompile(`\s+`)
	runOfBlanks    = regexp.MustCompile(`\n\n\n+`)
	crlfReplacer   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	bulletPrefixes = []string{"- ", "* "}
)

// CleanText normalizes free-form job posting text while preserving its
// structure: line endings become LF, headings and bullets keep their
// markers, runs of spaces collapse, and runs of blank lines shrink to one
// separator. Resume markdown is never cleaned; section bodies must survive
// parsing verbatim.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = crlfReplacer.Replace(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = runOfBlanks.ReplaceAllString(result, "\n\n")
	// Blank lines are already bare after cleanLine; trimming newlines only
	// keeps the indentation of an indented first line intact.
	return strings.Trim(result, "\n")
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Markdown headings lose their leading indentation but nothing else.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullets keep marker and indentation.
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			indent := len(line) - len(trimmed)
			return strings.Repeat(" ", indent) + trimmed
		}
	}

	indent := len(line) - len(trimmed)
	content := innerSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// IngestJobPosting reads a job posting file, cleans its text, and returns
// the cleaned content with metadata.
func IngestJobPosting(path string) (string, *Metadata, error) {
	content, err := ReadDocument(path)
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(content)
	return cleaned, NewMetadata(DocumentJob, path, cleaned), nil
}

// IngestResume reads a resume file and returns its content untouched, with
// metadata. No cleanup runs: section bodies round-trip through the parser
// exactly as written.
func IngestResume(path string) (string, *Metadata, error) {
	content, err := ReadDocument(path)
	if err != nil {
		return "", nil, err
	}

	return content, NewMetadata(DocumentResume, path, content), nil
}

// WriteArtifacts writes a parsed model JSON document and its metadata
// sidecar under outDir. baseName is the artifact name without extension.
func WriteArtifacts(outDir, baseName string, model []byte, meta *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	modelPath := filepath.Join(outDir, baseName+".json")
	if err := os.WriteFile(modelPath, model, 0644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}

	metaJSON, err := meta.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, baseName+".meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
