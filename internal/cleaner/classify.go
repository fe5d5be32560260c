package cleaner

import (
	"regexp"
	"strings"
)

// LineRole is the structural role of one physical line. Roles are recomputed
// from the current text whenever a pass needs them; they are never carried
// across passes, since earlier passes change line boundaries.
type LineRole int

const (
	RoleParagraph LineRole = iota
	RoleCode
	RoleTableRow
	RoleTableSeparator
	RoleListItem
	RoleHeadingLike
	RoleBlank
)

// String returns the role name, for diagnostics and test failure messages.
func (r LineRole) String() string {
	switch r {
	case RoleCode:
		return "code"
	case RoleTableRow:
		return "table-row"
	case RoleTableSeparator:
		return "table-separator"
	case RoleListItem:
		return "list-item"
	case RoleHeadingLike:
		return "heading-like"
	case RoleBlank:
		return "blank"
	default:
		return "paragraph"
	}
}

var (
	listMarkerRE = regexp.MustCompile(`^\s*(?:[-*+•]|\d+[.)])\s+`)

	codeStrongREs = []*regexp.Regexp{
		regexp.MustCompile(`^(?:from\s+[A-Za-z_][\w.]*\s+import\b|import\s+[A-Za-z_][\w.]*)`),
		regexp.MustCompile(`^(?:class|def)\s+[A-Za-z_]\w*`),
		regexp.MustCompile(`^(?:if|elif|else|for|while|try|except|finally|with)\b.*:\s*$`),
		regexp.MustCompile(`^(?:return|yield|break|continue|pass)\b`),
		regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s*=\s*.+`),
		regexp.MustCompile(`^[A-Za-z_][\w.]*\([^)]*\)\s*$`),
		regexp.MustCompile(`^@[A-Za-z_][\w.]*`),
	}

	codeSymbolRE  = regexp.MustCompile(`[{}\[\]=;]`)
	cjkPunctRE    = regexp.MustCompile(`[，。！？；：、“”‘’（）【】《》]`)
	fencedCodeRE  = regexp.MustCompile("^\\s*```")
	headingTailRE = regexp.MustCompile(`[，,。.!?！？]$`)
	colonTailRE   = regexp.MustCompile(`[:：]$`)
	colonSplitRE  = regexp.MustCompile(`[:：]`)
)

// isCodeLineCandidate reports whether a single line looks like code on its
// own: a strong statement pattern, or code symbols without a CJK punctuation
// hint. CJK punctuation suppresses the symbol heuristic so that prose such
// as “配置【重要】” is not mistaken for code.
func isCodeLineCandidate(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	for _, re := range codeStrongREs {
		if re.MatchString(stripped) {
			return true
		}
	}
	if codeSymbolRE.MatchString(stripped) && !cjkPunctRE.MatchString(stripped) {
		return true
	}
	return false
}

// detectCodeLines returns the set of line indices classified as code.
//
// Fenced blocks are handled first: the delimiters toggle a flag and every
// line between them is code (the delimiter lines themselves are not).
// Outside fences, strong-pattern lines are code immediately; indented lines
// and "#" comment lines are weak candidates, promoted by fixed-point
// propagation when they sit next to a code line, or one blank line away from
// one. The loop terminates because the weak set only shrinks.
func detectCodeLines(lines []string) map[int]bool {
	code := make(map[int]bool)
	weak := make(map[int]bool)
	inFence := false

	for i, raw := range lines {
		stripped := strings.TrimSpace(raw)

		if fencedCodeRE.MatchString(stripped) {
			inFence = !inFence
			continue
		}
		if inFence {
			code[i] = true
			continue
		}
		if stripped == "" {
			continue
		}
		if isCodeLineCandidate(raw) {
			code[i] = true
			continue
		}
		if strings.HasPrefix(raw, "    ") || strings.HasPrefix(raw, "\t") {
			weak[i] = true
			continue
		}
		if strings.HasPrefix(stripped, "#") {
			weak[i] = true
		}
	}

	for changed := true; changed; {
		changed = false
		for i := range weak {
			nearCode := code[i-1] || code[i+1]
			blankBefore := code[i-2] && i-1 >= 0 && strings.TrimSpace(lines[i-1]) == ""
			blankAfter := code[i+2] && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == ""
			if nearCode || blankBefore || blankAfter {
				code[i] = true
				delete(weak, i)
				changed = true
			}
		}
	}

	return code
}

// classifyLines assigns a role to every line in order. Code wins over every
// other role (a fenced table stays code); the remaining roles are decided
// per line. A separator row is also a table row by the row predicate, so the
// separator check runs first.
func classifyLines(lines []string) []LineRole {
	roles := make([]LineRole, len(lines))
	code := detectCodeLines(lines)
	for i, raw := range lines {
		stripped := strings.TrimSpace(raw)
		switch {
		case code[i]:
			roles[i] = RoleCode
		case stripped == "":
			roles[i] = RoleBlank
		case isTableSeparatorLine(raw):
			roles[i] = RoleTableSeparator
		case isTableRowLine(raw):
			roles[i] = RoleTableRow
		case listMarkerRE.MatchString(raw):
			roles[i] = RoleListItem
		case isHeadingLike(raw):
			roles[i] = RoleHeadingLike
		default:
			roles[i] = RoleParagraph
		}
	}
	return roles
}

// isHeadingLike reports whether a line reads as a short structural label:
// a line of at most 30 runes ending in a colon, or one of at most 24 runes
// containing 1–3 colon-separated segments with no sentence-final punctuation.
// Such lines are kept out of paragraph merges.
func isHeadingLike(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	if listMarkerRE.MatchString(stripped) {
		return false
	}
	if isTableRowLine(stripped) {
		return false
	}

	n := len([]rune(stripped))
	if n <= 30 && colonTailRE.MatchString(stripped) {
		return true
	}
	if n <= 24 && colonSplitRE.MatchString(stripped) && !headingTailRE.MatchString(stripped) {
		parts := 0
		for _, part := range colonSplitRE.Split(stripped, -1) {
			if part != "" {
				parts++
			}
		}
		if parts > 1 && parts <= 3 {
			return true
		}
	}
	return false
}

// isCJK reports whether r is in the core CJK ideograph range.
func isCJK(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}
