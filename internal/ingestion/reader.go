// Package ingestion reads resume and job posting documents from disk,
// normalizes their encoding to UTF-8, and prepares cleaned text plus
// metadata for the parsing engine.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ReadError reports a failure to read or decode a document.
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to read %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to read %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadDocument reads a text document and decodes it to UTF-8. Encoding is
// detected from the BOM when present; BOM-less content that is not valid
// UTF-8 falls back to Windows-1252, which decodes any byte sequence. An
// empty file yields an empty string without error; it is the parser's job
// to reject empty input.
func ReadDocument(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &ReadError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &ReadError{Path: path, Message: "read failed", Cause: err}
	}

	if len(raw) == 0 {
		return "", nil
	}

	return DecodeText(path, raw)
}

// DecodeText converts raw document bytes to a UTF-8 string.
func DecodeText(path string, raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return string(raw[len(bomUTF8):]), nil

	case bytes.HasPrefix(raw, bomUTF16LE):
		return decodeUTF16(path, raw, unicode.LittleEndian)

	case bytes.HasPrefix(raw, bomUTF16BE):
		return decodeUTF16(path, raw, unicode.BigEndian)

	case utf8.Valid(raw):
		return string(raw), nil

	default:
		// Windows-1252 maps every byte, so this cannot fail; it covers the
		// Latin-1 family of legacy exports.
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", &ReadError{Path: path, Message: "undecodable content", Cause: err}
		}
		return string(decoded), nil
	}
}

func decodeUTF16(path string, raw []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil {
		return "", &ReadError{Path: path, Message: "invalid UTF-16 content", Cause: err}
	}
	return string(decoded), nil
}
