package cleaner

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRunRE = regexp.MustCompile(`\s{3,}`)

// Quality bands reported alongside the score.
const (
	BandDeliverable = "可直接交付"
	BandFair        = "较好，建议复查"
	BandNeedsWork   = "需进一步优化"
)

// QualityScore rates the final text from 0 to 100. It is a read-only report
// over the output and never feeds back into the pipeline. Deductions, each
// capped: whitespace runs, zero-width characters, leftover heading and
// fence markers, and a flat penalty for near-empty text.
func QualityScore(text string) int {
	score := 100
	score -= capAt(len(whitespaceRunRE.FindAllString(text, -1))*2, 20)
	score -= capAt(len(zeroWidthRE.FindAllString(text, -1))*3, 20)
	score -= capAt(strings.Count(text, "###")*2+strings.Count(text, "```")*3, 20)
	if len([]rune(strings.TrimSpace(text))) < 30 {
		score -= 10
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// QualityBand maps a score to its delivery-readiness band.
func QualityBand(score int) string {
	switch {
	case score >= 90:
		return BandDeliverable
	case score >= 75:
		return BandFair
	default:
		return BandNeedsWork
	}
}

func capAt(n, limit int) int {
	if n > limit {
		return limit
	}
	return n
}

const cjkPunctSet = "，。！？；：、（）【】“”‘’《》"
const asciiPunctSet = `,.!?;:()[]"'`

// PunctuationConsistencyWarnings counts lines mixing CJK and ASCII
// punctuation and reports the count as a single warning. An empty slice
// means the text is consistent.
func PunctuationConsistencyWarnings(text string) []string {
	mixed := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		hasCJK := strings.ContainsAny(line, cjkPunctSet)
		hasASCII := strings.ContainsAny(line, asciiPunctSet)
		if hasCJK && hasASCII {
			mixed++
		}
	}
	if mixed == 0 {
		return nil
	}
	return []string{fmt.Sprintf("标点混用 %d 处", mixed)}
}
