package cleaner

import (
	"regexp"
	"strings"
)

var (
	atxHeadingRE     = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s*`)
	blockquoteRE     = regexp.MustCompile(`(?m)^\s*>\s?`)
	fenceMarkerRE    = regexp.MustCompile("```(?:[\\w+-]+)?\n?")
	inlineCodeRE     = regexp.MustCompile("`([^`]+)`")
	boldStarRE       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderscoreRE = regexp.MustCompile(`__([^_]+)__`)
	italicStarRE     = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderRE    = regexp.MustCompile(`_([^_]+)_`)
	imageRE          = regexp.MustCompile(`!\[[^\]]*\]\([^\)]*\)`)
	linkRE           = regexp.MustCompile(`\[([^\]]+)\]\([^\)]*\)`)
	bulletMarkerRE   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	orderedMarkerRE  = regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s+`)
)

// stripMarkdown removes Markdown syntax from free spans only. Lines
// classified as code or table pass through verbatim; the free lines between
// them are rejoined and rewritten as one span so multi-line constructs
// (fences, rules) are still caught.
func stripMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	roles := classifyLines(lines)

	var free []string
	var out []string
	flush := func() {
		if len(free) > 0 {
			out = append(out, stripMarkdownInline(strings.Join(free, "\n")))
			free = free[:0]
		}
	}
	for i, line := range lines {
		switch roles[i] {
		case RoleCode, RoleTableRow, RoleTableSeparator:
			flush()
			out = append(out, line)
		default:
			free = append(free, line)
		}
	}
	flush()
	return strings.Join(out, "\n")
}

// stripMarkdownInline applies the ordered substitution sequence to a free
// span. Emphasis unwrapping runs before bullet-marker normalization so that
// emphasized list text still yields a recognizable marker.
func stripMarkdownInline(text string) string {
	text = atxHeadingRE.ReplaceAllString(text, "")
	text = blockquoteRE.ReplaceAllString(text, "")
	text = stripHorizontalRules(text)
	text = fenceMarkerRE.ReplaceAllString(text, "")
	text = inlineCodeRE.ReplaceAllString(text, "$1")
	text = boldStarRE.ReplaceAllString(text, "$1")
	text = boldUnderscoreRE.ReplaceAllString(text, "$1")
	text = italicStarRE.ReplaceAllString(text, "$1")
	text = italicUnderRE.ReplaceAllString(text, "$1")
	text = imageRE.ReplaceAllString(text, "")
	text = linkRE.ReplaceAllString(text, "$1")
	text = bulletMarkerRE.ReplaceAllString(text, "• ")
	text = orderedMarkerRE.ReplaceAllString(text, "$1. ")
	return text
}

// isHorizontalRuleLine reports whether the trimmed line is three or more
// repeats of the same rule character (-, * or _), optionally space
// separated. Expressed as a scan because the natural regex needs a
// backreference.
func isHorizontalRuleLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	marker := rune(stripped[0])
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	count := 0
	for _, r := range stripped {
		switch {
		case r == marker:
			count++
		case r == ' ' || r == '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// stripHorizontalRules blanks horizontal-rule lines.
func stripHorizontalRules(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if isHorizontalRuleLine(line) {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
