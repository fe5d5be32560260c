// Package cleaner normalizes loosely-formatted AI-generated prose into
// publication-ready text. It standardizes punctuation, whitespace, list
// markers and paragraph breaks while keeping protected spans (fenced or
// heuristically detected code, tables) byte-identical.
//
// Every pass re-splits the current text into lines and re-classifies them,
// because earlier passes may change line boundaries; roles are never cached
// across passes. Clean is a pure function of (text, options): deterministic,
// total over arbitrary Unicode input, and idempotent on already-clean text.
package cleaner

import "strings"

// Clean runs the normalization pipeline over text, with passes toggled by
// opts. Input that no rule matches falls through as ordinary paragraph
// text; Clean never fails.
func Clean(text string, opts Options) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = zeroWidthRE.ReplaceAllString(text, "")

	text = normalizeListMarkers(text)
	text = removeRepeatedNoise(text)

	if opts.RemoveMarkdown {
		text = stripMarkdown(text)
	}

	if opts.KeepTables {
		text = normalizeTableBlocks(text)
	} else {
		text = convertTableBlocksToBullets(text)
	}

	if opts.NormalizePunctuation {
		text = normalizePunctuation(text)
	}

	if opts.RemoveEmoji {
		text = emojiRE.ReplaceAllString(text, "")
	}

	if opts.NormalizeWhitespace {
		text = normalizeWhitespace(text)
	}

	text = normalizeCJKLatinSpacing(text)

	if opts.MergeWrappedLines {
		text = mergeLines(text)
	}

	if opts.IndentParagraph {
		text = indentParagraphs(text, opts.MergeWrappedLines)
	}

	return strings.Trim(text, "\n\r")
}
