package cleaner

// Options controls which cleaning passes run. Passed by value into Clean;
// never mutated mid-pipeline.
type Options struct {
	RemoveMarkdown       bool `json:"remove_markdown" yaml:"remove_markdown"`
	NormalizePunctuation bool `json:"normalize_punctuation" yaml:"normalize_punctuation"`
	NormalizeWhitespace  bool `json:"normalize_whitespace" yaml:"normalize_whitespace"`
	MergeWrappedLines    bool `json:"merge_wrapped_lines" yaml:"merge_wrapped_lines"`
	RemoveEmoji          bool `json:"remove_emoji" yaml:"remove_emoji"`
	IndentParagraph      bool `json:"indent_paragraph" yaml:"indent_paragraph"`
	KeepTables           bool `json:"keep_tables" yaml:"keep_tables"`
}

// DefaultOptions returns the standard cleaning profile: strip Markdown,
// unify punctuation and whitespace, merge wrapped lines, indent paragraphs,
// keep tables, and leave emoji alone.
func DefaultOptions() Options {
	return Options{
		RemoveMarkdown:       true,
		NormalizePunctuation: true,
		NormalizeWhitespace:  true,
		MergeWrappedLines:    true,
		RemoveEmoji:          false,
		IndentParagraph:      true,
		KeepTables:           true,
	}
}
