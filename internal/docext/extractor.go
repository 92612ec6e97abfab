// Package docext extracts plain text from uploaded resume documents.
package docext

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gen2brain/go-fitz"
)

var (
	// ErrUnsupportedType is returned for file types other than PDF and DOCX.
	ErrUnsupportedType = errors.New("unsupported document type")
	// ErrNoText is returned when extraction succeeds but yields no content.
	ErrNoText = errors.New("document contains no extractable text")
)

// Extractor converts resume documents to plain text.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract returns the text content of data, dispatching on the lowered file
// name extension. The whole document is processed in memory.
func (e *Extractor) Extract(data []byte, fileName string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		return "", ErrUnsupportedType
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		page, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i+1, err)
		}
		sb.WriteString(page)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to convert DOCX: %w", err)
	}
	return text, nil
}
