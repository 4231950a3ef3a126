// Package extract turns uploaded project documents into plain text.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// Supported MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTXT  = "text/plain"
)

// Extract reads a document of the given MIME type and returns its plain
// text. Unsupported MIME types return ErrUnsupportedFileType; documents
// that yield no text return ErrExtraction.
func Extract(r io.Reader, mimeType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: reading document: %v", domain.ErrExtraction, err)
	}

	var text string
	switch mimeType {
	case MimePDF:
		text, err = extractPDF(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	case MimeTXT:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, mimeType)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: document contains no text", domain.ErrExtraction)
	}
	return text, nil
}

// ExtractFile extracts text from a document on disk, inferring the MIME
// type from the file extension.
func ExtractFile(path string) (string, error) {
	mimeType, err := MimeForPath(path)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	defer f.Close()

	return Extract(f, mimeType)
}

// MimeForPath maps a file extension to a supported MIME type.
func MimeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return MimePDF, nil
	case ".docx":
		return MimeDOCX, nil
	case ".txt":
		return MimeTXT, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, filepath.Ext(path))
	}
}
