package cleaner

import (
	"regexp"
	"strings"
)

var (
	anyBulletRE   = regexp.MustCompile(`^[-*+•·●▪◦‣⁃]\s*(.+)$`)
	anyOrderedRE  = regexp.MustCompile(`^[（(]?(\d{1,3})[)）.、]\s*(.+)$`)
	breakMarkerRE = regexp.MustCompile(`^(?:\d+[.)、]\s+|•\s+|-\s+|[（(]\d+[)）])`)
)

// normalizeListMarkers rewrites the many bullet glyphs and ordinal styles
// that generated text uses down to "• " and "N. ". Horizontal rules are kept
// as-is so the Markdown pass can still see them; code lines are untouched.
func normalizeListMarkers(text string) string {
	lines := strings.Split(text, "\n")
	roles := classifyLines(lines)
	for i, raw := range lines {
		if roles[i] == RoleCode {
			lines[i] = strings.TrimRight(raw, " \t")
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			lines[i] = ""
			continue
		}
		if isHorizontalRuleLine(line) {
			lines[i] = line
			continue
		}
		if m := anyBulletRE.FindStringSubmatch(line); m != nil {
			lines[i] = "• " + strings.TrimSpace(m[1])
			continue
		}
		if m := anyOrderedRE.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + ". " + strings.TrimSpace(m[2])
			continue
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
