package cleaner

import (
	"strings"
	"unicode"
)

// removeRepeatedNoise collapses generation artifacts: duplicated label
// prefixes, runs of identical terminal punctuation, and short tokens
// repeated across commas. Code and table lines are left alone. The collapse
// rules are run-length scans rather than regexes because they match a
// captured unit repeated later in the line, which needs backreferences.
func removeRepeatedNoise(text string) string {
	lines := strings.Split(text, "\n")
	roles := classifyLines(lines)
	for i, raw := range lines {
		switch roles[i] {
		case RoleCode:
			lines[i] = strings.TrimRight(raw, " \t")
			continue
		case RoleBlank:
			lines[i] = ""
			continue
		case RoleTableRow, RoleTableSeparator:
			lines[i] = strings.TrimSpace(raw)
			continue
		}
		line := strings.TrimSpace(raw)
		line = collapseColonRuns(line)
		line = collapseRepeatedLabel(line)
		line = collapseRepeatedPunct(line)
		line = collapseRepeatedTokens(line)
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func isColonRune(r rune) bool { return r == ':' || r == '：' }

func isSpaceRune(r rune) bool { return r == ' ' || r == '\t' }

// collapseColonRuns rewrites a colon followed by two or more short
// "segment + same colon" repetitions down to the bare colon, e.g.
// "目标：A：B：" -> "目标：".
func collapseColonRuns(line string) string {
	runes := []rune(line)
	var out []rune
	for i := 0; i < len(runes); {
		c := runes[i]
		if !isColonRune(c) {
			out = append(out, c)
			i++
			continue
		}
		j := i + 1
		reps := 0
		for {
			p := j
			for p < len(runes) && !isColonRune(runes[p]) {
				p++
			}
			if p >= len(runes) || runes[p] != c || p == j {
				break
			}
			ws := 0
			for j+ws < p && isSpaceRune(runes[j+ws]) {
				ws++
			}
			if (p-j)-ws > 20 {
				break
			}
			j = p + 1
			reps++
		}
		out = append(out, c)
		if reps >= 2 {
			i = j
		} else {
			i++
		}
	}
	return string(out)
}

// collapseRepeatedLabel drops duplicated "label:" prefixes at the start of
// a line, e.g. "注意：注意：内容" -> "注意：内容".
func collapseRepeatedLabel(line string) string {
	runes := []rune(line)
	q := 0
	for q < len(runes) && !isColonRune(runes[q]) {
		q++
	}
	if q == 0 || q > 20 || q >= len(runes) {
		return line
	}
	label := runes[:q+1]
	rest := runes[q+1:]
	dropped := false
	for len(rest) >= len(label) && string(rest[:len(label)]) == string(label) {
		rest = rest[len(label):]
		dropped = true
	}
	if !dropped {
		return line
	}
	return string(label) + string(rest)
}

const terminalPunct = "。.!?！？；;，,、"

// collapseRepeatedPunct folds runs of the same terminal punctuation
// character, allowing whitespace in between, e.g. "完成！！！" -> "完成！".
func collapseRepeatedPunct(line string) string {
	runes := []rune(line)
	var out []rune
	for i := 0; i < len(runes); {
		r := runes[i]
		if !strings.ContainsRune(terminalPunct, r) {
			out = append(out, r)
			i++
			continue
		}
		j := i + 1
		for {
			k := j
			for k < len(runes) && isSpaceRune(runes[k]) {
				k++
			}
			if k < len(runes) && runes[k] == r {
				j = k + 1
				continue
			}
			break
		}
		out = append(out, r)
		i = j
	}
	return string(out)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isTokenSeparator(r rune) bool {
	return r == '，' || r == ',' || r == ';' || r == '；'
}

// collapseRepeatedTokens folds a short token repeated across comma-style
// separators down to one occurrence, e.g. "效率，效率，效率" -> "效率".
func collapseRepeatedTokens(line string) string {
	runes := []rune(line)
	var out []rune
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			out = append(out, runes[i])
			i++
			continue
		}
		e := i
		for e < len(runes) && isWordRune(runes[e]) {
			e++
		}
		length := e - i
		if length < 2 || length > 20 {
			out = append(out, runes[i])
			i++
			continue
		}
		token := runes[i:e]
		j := e
		reps := 0
		for {
			k := j
			for k < len(runes) && isSpaceRune(runes[k]) {
				k++
			}
			if k >= len(runes) || !isTokenSeparator(runes[k]) {
				break
			}
			k++
			for k < len(runes) && isSpaceRune(runes[k]) {
				k++
			}
			if k+len(token) > len(runes) || string(runes[k:k+len(token)]) != string(token) {
				break
			}
			j = k + len(token)
			reps++
		}
		if reps >= 1 {
			out = append(out, token...)
			i = j
		} else {
			out = append(out, runes[i])
			i++
		}
	}
	return string(out)
}
