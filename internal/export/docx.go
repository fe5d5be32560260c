//go:build export

package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// ToWord writes the cleaned text to a .docx file. List lines keep their
// markers; blank lines become empty paragraphs so spacing survives.
func ToWord(text, outputPath string) error {
	doc := docx.New().WithDefaultTheme()

	for _, raw := range strings.Split(text, "\n") {
		style, value := SplitLineStyle(raw)
		para := doc.AddParagraph()
		if style == StyleBlank {
			continue
		}
		// Size is in half-points, so 22 renders as 11pt.
		para.AddText(value).Size("22")
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("export to Word: %w", err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("export to Word: %w", err)
	}
	return nil
}
