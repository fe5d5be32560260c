// Package export renders cleaned text into Word and PDF documents.
// The writers are optional: build with -tags=export to enable them,
// otherwise they report ErrMissingDependency.
package export

import "strings"

// LineStyle classifies an output line for document layout purposes.
type LineStyle int

const (
	StyleParagraph LineStyle = iota
	StyleList
	StyleBlank
)

// IsListLine reports whether a cleaned line carries a list marker.
// Recognized markers: "• ", "- ", ordered "1. " / "1) " within the first
// four characters, and full-width "（1）" enumerations.
func IsListLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if strings.HasPrefix(stripped, "• ") || strings.HasPrefix(stripped, "- ") {
		return true
	}
	runes := []rune(stripped)
	if len(runes) >= 3 && runes[0] >= '0' && runes[0] <= '9' {
		head := string(runes[:min(4, len(runes))])
		if strings.Contains(head, ") ") || strings.Contains(head, ". ") {
			return true
		}
	}
	if len(runes) >= 3 && runes[0] == '（' {
		head := string(runes[:min(4, len(runes))])
		if strings.Contains(head, "）") {
			return true
		}
	}
	return false
}

// SplitLineStyle trims the line and classifies it for the writers.
func SplitLineStyle(line string) (LineStyle, string) {
	stripped := strings.TrimRight(line, " \t")
	if strings.TrimSpace(stripped) == "" {
		return StyleBlank, ""
	}
	if IsListLine(stripped) {
		return StyleList, stripped
	}
	return StyleParagraph, stripped
}
