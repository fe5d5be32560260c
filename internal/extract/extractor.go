// Package extract pulls plain text out of the document formats the cleaning
// tools accept as input. Unlike a search indexer, the cleaner cares about
// line structure: paragraphs come out one per line and spreadsheet rows come
// out as pipe-delimited table lines, so the downstream passes can classify
// them.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile reads the file at path and returns its text content, dispatching
// on the file extension. Unknown extensions are treated as plain text.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return FromBytes(content, strings.ToLower(filepath.Ext(path)))
}

// FromBytes extracts text from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf").
func FromBytes(content []byte, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return fromPDF(content)
	case ".docx":
		return fromDOCX(content)
	case ".xlsx":
		return fromExcel(content)
	default:
		return fromPlain(content), nil
	}
}
