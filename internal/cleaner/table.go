package cleaner

import (
	"regexp"
	"strings"
)

var separatorCellRE = regexp.MustCompile(`^:?-{3,}:?$`)

// headerHints are keywords whose presence in the first row's joined text
// marks the row as a header.
var headerHints = []string{
	"网站", "网址", "核心用途", "优势", "用途", "说明", "备注", "类型",
	"名称", "标题", "平台",
	"link", "url", "website", "purpose", "usage", "advantage", "benefit",
}

// titleHints and urlHints pick the title / URL columns when a table is
// flattened to bullets.
var titleHints = []string{"网站", "名称", "标题", "平台", "站点", "资源"}
var urlHints = []string{"网址", "链接", "url", "link"}

// tableBlock is a parsed run of contiguous table-row lines. Constructed and
// consumed within a single pass, never persisted.
type tableBlock struct {
	rows      [][]string
	hasHeader bool
}

// isTableRowLine reports whether splitting the line on pipes yields at
// least two non-empty cells.
func isTableRowLine(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	count := 0
	for _, part := range strings.Split(line, "|") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count >= 2
}

// isTableSeparatorLine reports whether every pipe-delimited cell is a pure
// Markdown separator cell (optional colons around three or more dashes).
func isTableSeparatorLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if !strings.Contains(stripped, "|") {
		return false
	}
	cells := splitTableCells(stripped)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if cell == "" || !separatorCellRE.MatchString(cell) {
			return false
		}
	}
	return true
}

// splitTableCells trims outer pipes and whitespace and splits into trimmed
// cell strings.
func splitTableCells(line string) []string {
	stripped := strings.Trim(strings.TrimSpace(line), "|")
	parts := strings.Split(stripped, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// parseTableBlock parses a run of table lines into rows. A separator line
// sets hasHeader and is dropped from the data; without one, the first row is
// probed with isProbableHeader.
func parseTableBlock(lines []string) tableBlock {
	var block tableBlock
	for _, raw := range lines {
		if isTableSeparatorLine(raw) {
			block.hasHeader = true
			continue
		}
		block.rows = append(block.rows, splitTableCells(raw))
	}
	if len(block.rows) == 0 {
		return block
	}
	if !block.hasHeader && isProbableHeader(block.rows[0], block.rows[1:]) {
		block.hasHeader = true
	}
	return block
}

// isProbableHeader infers whether the first row of a separator-less table is
// a header. The precedence order is deliberate and load-bearing: a header
// keyword match wins outright, then a URL in any cell disqualifies the row,
// then all-short cells with at least one data row qualify it.
func isProbableHeader(header []string, dataRows [][]string) bool {
	joined := strings.ToLower(strings.TrimSpace(strings.Join(header, " ")))
	for _, hint := range headerHints {
		if strings.Contains(joined, hint) {
			return true
		}
	}
	for _, cell := range header {
		if strings.Contains(strings.ToLower(cell), "http") {
			return false
		}
	}
	if len(dataRows) >= 1 {
		allShort := true
		for _, cell := range header {
			trimmed := strings.TrimSpace(cell)
			if trimmed != "" && len([]rune(trimmed)) > 10 {
				allShort = false
				break
			}
		}
		if allShort {
			return true
		}
	}
	return false
}

func formatTableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func formatTableSeparator(colCount int) string {
	cells := make([]string, colCount)
	for i := range cells {
		cells[i] = "---"
	}
	return formatTableRow(cells)
}

// padRow extends row with empty cells up to colCount.
func padRow(row []string, colCount int) []string {
	for len(row) < colCount {
		row = append(row, "")
	}
	return row
}

// normalizeTableBlocks re-renders every maximal run of table-row lines as a
// normalized pipe table: rows padded to the maximum column count, and a
// separator inserted after the first row when a header is present or the
// block has two or more rows.
func normalizeTableBlocks(text string) string {
	return rewriteTableBlocks(text, normalizeTableBlock)
}

// convertTableBlocksToBullets replaces every table block with one bullet
// line per data row.
func convertTableBlocksToBullets(text string) string {
	return rewriteTableBlocks(text, tableBlockToBullets)
}

// rewriteTableBlocks walks the text, collects maximal runs of table-row
// lines, and hands each run to rewrite; other lines pass through.
func rewriteTableBlocks(text string, rewrite func([]string) []string) string {
	lines := strings.Split(text, "\n")
	var out []string
	for i := 0; i < len(lines); {
		if !isTableRowLine(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		var block []string
		for i < len(lines) && isTableRowLine(lines[i]) {
			block = append(block, lines[i])
			i++
		}
		out = append(out, rewrite(block)...)
	}
	return strings.Join(out, "\n")
}

func normalizeTableBlock(lines []string) []string {
	block := parseTableBlock(lines)
	if len(block.rows) == 0 {
		return lines
	}

	colCount := 0
	for _, row := range block.rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	normalized := make([]string, 0, len(block.rows)+1)
	for _, row := range block.rows {
		normalized = append(normalized, formatTableRow(padRow(row, colCount)))
	}
	if block.hasHeader || len(normalized) >= 2 {
		normalized = append(normalized[:1], append([]string{formatTableSeparator(colCount)}, normalized[1:]...)...)
	}
	return normalized
}

func tableBlockToBullets(lines []string) []string {
	block := parseTableBlock(lines)
	if len(block.rows) == 0 {
		return lines
	}

	var header []string
	dataRows := block.rows
	if block.hasHeader {
		header = block.rows[0]
		dataRows = block.rows[1:]
	}

	maxCols := len(header)
	for _, row := range dataRows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	header = padRow(header, maxCols)

	var bullets []string
	for _, row := range dataRows {
		if line := formatTableBullet(header, padRow(row, maxCols)); line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// formatTableBullet renders one data row as a bullet. With a title column
// the bullet leads with the title (URL in full-width parens, remaining
// fields as label：value pairs after an em dash); without one, all non-empty
// fields are joined as label：value pairs.
func formatTableBullet(header, row []string) string {
	titleIdx, urlIdx := -1, -1
	for i, cell := range header {
		if titleIdx < 0 && containsAny(cell, titleHints) {
			titleIdx = i
		}
		if urlIdx < 0 && containsAny(strings.ToLower(cell), urlHints) {
			urlIdx = i
		}
	}

	title, url := "", ""
	if titleIdx >= 0 && titleIdx < len(row) {
		title = row[titleIdx]
	}
	if urlIdx >= 0 && urlIdx < len(row) {
		url = row[urlIdx]
	}

	if title != "" {
		var details []string
		for i := 0; i < len(header) && i < len(row); i++ {
			if i == titleIdx || i == urlIdx || row[i] == "" {
				continue
			}
			if header[i] != "" {
				details = append(details, header[i]+"："+row[i])
			} else {
				details = append(details, row[i])
			}
		}
		line := "• " + title
		if url != "" {
			line += "（" + url + "）"
		}
		if len(details) > 0 {
			line += " — " + strings.Join(details, "；")
		}
		return line
	}

	var parts []string
	for i := 0; i < len(header) && i < len(row); i++ {
		if row[i] == "" {
			continue
		}
		if header[i] != "" {
			parts = append(parts, header[i]+"："+row[i])
		} else {
			parts = append(parts, row[i])
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "• " + strings.Join(parts, "；")
}

func containsAny(s string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}
