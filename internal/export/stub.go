//go:build !export

package export

import "fmt"

// ToWord is unavailable without the export build tag.
func ToWord(text, outputPath string) error {
	return fmt.Errorf("Word export requires a binary built with -tags=export: %w", ErrMissingDependency)
}

// ToPDF is unavailable without the export build tag.
func ToPDF(text, outputPath string) error {
	return fmt.Errorf("PDF export requires a binary built with -tags=export: %w", ErrMissingDependency)
}
