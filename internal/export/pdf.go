//go:build export

package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

// cjkFontPaths lists common locations of a CJK-capable TrueType font.
// The first one that exists is registered for the whole document.
var cjkFontPaths = []string{
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/wenquanyi/wqy-microhei/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/arphic/uming.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"C:\\Windows\\Fonts\\msyh.ttc",
}

func findCJKFont() (string, error) {
	for _, p := range cjkFontPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no CJK font found: %w", ErrMissingDependency)
}

// ToPDF writes the cleaned text to an A4 PDF. List lines are indented,
// blank lines become vertical gaps.
func ToPDF(text, outputPath string) error {
	fontPath, err := findCJKFont()
	if err != nil {
		return fmt.Errorf("export to PDF: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(42, 42, 42)
	pdf.SetAutoPageBreak(true, 42)
	pdf.AddUTF8Font("cjk", "", fontPath)
	pdf.SetFont("cjk", "", 11)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	bodyW := pageW - 84

	for _, raw := range strings.Split(text, "\n") {
		style, value := SplitLineStyle(raw)
		switch style {
		case StyleBlank:
			pdf.Ln(8)
		case StyleList:
			pdf.SetX(42 + 12)
			pdf.MultiCell(bodyW-12, 18, value, "", "L", false)
			pdf.Ln(4)
		default:
			pdf.MultiCell(bodyW, 18, value, "", "L", false)
			pdf.Ln(6)
		}
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("export to PDF: %w", err)
	}
	return nil
}
