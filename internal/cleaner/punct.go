package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	zeroWidthRE = regexp.MustCompile(`[\x{200B}\x{200C}\x{200D}\x{FEFF}]`)
	emojiRE     = regexp.MustCompile(`[\x{1F300}-\x{1F6FF}\x{1F900}-\x{1F9FF}\x{1FA70}-\x{1FAFF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]+`)

	horizontalWSRE   = regexp.MustCompile(`[ \t]+`)
	spaceBeforeEndRE = regexp.MustCompile(` +([,.;:!?])`)
	blankRunRE       = regexp.MustCompile(`\n{3,}`)

	cjkThenLatinRE = regexp.MustCompile(`([\x{4e00}-\x{9fff}])([A-Za-z0-9])`)
	latinThenCJKRE = regexp.MustCompile(`([A-Za-z0-9])([\x{4e00}-\x{9fff}])`)
	letterDigitRE  = regexp.MustCompile(`([A-Za-z])(\d)`)
	digitLetterRE  = regexp.MustCompile(`(\d)([A-Za-z])`)
)

// punctReplacer folds CJK and typographic punctuation to ASCII equivalents.
// Applied after NFKC, which already handles the full-width compatibility
// forms; the ideographic marks (。、【】 and the curly quotes) need the
// explicit table.
var punctReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"—", "-",
	"–", "-",
	"…", "...",
	"【", "[",
	"】", "]",
	"（", "(",
	"）", ")",
	"，", ",",
	"。", ".",
	"；", ";",
	"：", ":",
	"！", "!",
	"？", "?",
	"、", ",",
)

// normalizePunctuation folds punctuation on every non-code line.
func normalizePunctuation(text string) string {
	lines := strings.Split(text, "\n")
	code := detectCodeLines(lines)
	for i, line := range lines {
		if code[i] {
			continue
		}
		lines[i] = punctReplacer.Replace(norm.NFKC.String(line))
	}
	return strings.Join(lines, "\n")
}

// normalizeWhitespace converts full-width and no-break spaces to ASCII,
// collapses space runs, trims line edges, drops spaces before terminal
// punctuation, and caps blank-line runs at one blank line. Code lines keep
// their interior spacing and are only right-trimmed.
func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	code := detectCodeLines(lines)
	for i, raw := range lines {
		line := strings.ReplaceAll(raw, "　", " ")
		line = strings.ReplaceAll(line, " ", " ")
		if code[i] {
			lines[i] = strings.TrimRight(line, " \t")
			continue
		}
		line = strings.TrimSpace(horizontalWSRE.ReplaceAllString(line, " "))
		line = spaceBeforeEndRE.ReplaceAllString(line, "$1")
		lines[i] = line
	}
	return blankRunRE.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}

// normalizeCJKLatinSpacing inserts one space at every CJK/Latin and
// letter/digit boundary on non-code lines, in both directions.
func normalizeCJKLatinSpacing(text string) string {
	lines := strings.Split(text, "\n")
	code := detectCodeLines(lines)
	for i, line := range lines {
		if code[i] {
			continue
		}
		line = cjkThenLatinRE.ReplaceAllString(line, "$1 $2")
		line = latinThenCJKRE.ReplaceAllString(line, "$1 $2")
		line = letterDigitRE.ReplaceAllString(line, "$1 $2")
		line = digitLetterRE.ReplaceAllString(line, "$1 $2")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
