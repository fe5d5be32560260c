package extract

import (
	"strings"
	"unicode/utf8"
)

// fromPlain returns content as a string, replacing invalid UTF-8 sequences
// with the replacement character.
func fromPlain(content []byte) string {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), "�")
	}
	return string(content)
}
