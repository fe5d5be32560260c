package cleaner

import (
	"regexp"
	"strings"
)

// ParagraphIndent is the two-character full-width indent prefixed to
// paragraph-leading lines.
const ParagraphIndent = "　　"

var sentenceEndRE = regexp.MustCompile(`[.!?;:。！？；：]$`)

// mergeLines reflows wrapped prose lines into paragraphs. Code, table and
// list lines flush the paragraph buffer and pass through verbatim; blank
// lines flush it; everything else accumulates into the buffer until a
// boundary condition breaks the paragraph.
func mergeLines(text string) string {
	lines := strings.Split(text, "\n")
	roles := classifyLines(lines)

	var merged []string
	buffer := ""
	flush := func() {
		if buffer != "" {
			merged = append(merged, strings.TrimSpace(buffer))
			buffer = ""
		}
	}

	for i, raw := range lines {
		switch roles[i] {
		case RoleCode:
			flush()
			merged = append(merged, strings.TrimRight(raw, " \t"))
			continue
		case RoleBlank:
			flush()
			continue
		}

		line := strings.TrimSpace(raw)
		if isTableRowLine(line) {
			flush()
			merged = append(merged, line)
			continue
		}
		if listMarkerRE.MatchString(line) {
			flush()
			merged = append(merged, line)
			continue
		}

		if buffer == "" {
			buffer = line
			continue
		}
		if shouldBreakParagraph(buffer, line) {
			merged = append(merged, strings.TrimSpace(buffer))
			buffer = line
		} else {
			buffer = buffer + joiner(buffer, line) + line
		}
	}
	flush()

	return blankRunRE.ReplaceAllString(strings.Join(merged, "\n"), "\n\n")
}

// shouldBreakParagraph decides whether line starts a new paragraph instead
// of continuing the buffered one. Ambiguous boundaries merge, the simpler
// and more common case for wrapped model output.
func shouldBreakParagraph(previous, current string) bool {
	if isTableRowLine(previous) || isTableRowLine(current) {
		return true
	}
	if breakMarkerRE.MatchString(current) {
		return true
	}
	if isHeadingLike(previous) || isHeadingLike(current) {
		return true
	}
	return sentenceEndRE.MatchString(previous)
}

// joiner returns the separator used when appending line to the buffer: none
// across a CJK/CJK boundary, a single space otherwise.
func joiner(previous, current string) string {
	prev := []rune(previous)
	cur := []rune(current)
	if len(prev) > 0 && len(cur) > 0 && isCJK(prev[len(prev)-1]) && isCJK(cur[0]) {
		return ""
	}
	return " "
}

// indentParagraphs prefixes paragraph-leading lines with the full-width
// indent. When lines were merged, every prose line is a paragraph of its
// own; otherwise only the first line after a paragraph boundary is indented.
func indentParagraphs(text string, mergedLines bool) string {
	lines := strings.Split(text, "\n")
	code := detectCodeLines(lines)
	paragraphStart := true

	for i, raw := range lines {
		if code[i] {
			lines[i] = strings.TrimRight(raw, " \t")
			paragraphStart = true
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			lines[i] = ""
			paragraphStart = true
			continue
		}

		if mergedLines {
			if shouldIndent(line) {
				line = ParagraphIndent + line
			}
			lines[i] = line
			paragraphStart = true
			continue
		}

		if paragraphStart && shouldIndent(line) {
			line = ParagraphIndent + line
		}
		lines[i] = line
		paragraphStart = false
	}
	return strings.Join(lines, "\n")
}

// shouldIndent excludes structural lines (headings, tables, code, list
// items) from paragraph indentation.
func shouldIndent(line string) bool {
	if isHeadingLike(line) {
		return false
	}
	if isTableRowLine(line) {
		return false
	}
	if isCodeLineCandidate(line) || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return false
	}
	return !breakMarkerRE.MatchString(line)
}
