package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// fromExcel renders every sheet as pipe-delimited rows, so spreadsheet
// tables arrive in the form the table engine recognizes. Sheets are
// separated by a blank line.
func fromExcel(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	var buf strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("get rows for sheet %q: %w", sheet, err)
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			buf.WriteString("| " + strings.Join(row, " | ") + " |")
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
