package cleaner

import (
	"strings"
	"testing"
)

func TestQualityScore(t *testing.T) {
	long := strings.Repeat("这是一段足够长的正文内容。", 5)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"clean long text", long, 100},
		{"short text penalty", "短", 90},
		{"whitespace runs", long + "a    b\t\t\tc", 96},
		{"zero width characters", long + "\u200b\ufeff", 94},
		{"leftover markers", long + "### x ```", 95},
		{"marker deduction capped", long + strings.Repeat("``` ", 20), 80},
		{"all deductions capped", strings.Repeat("\u200b", 10) + strings.Repeat("```", 10), 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityScore(tt.text); got != tt.want {
				t.Errorf("QualityScore(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestQualityBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, BandDeliverable},
		{90, BandDeliverable},
		{89, BandFair},
		{75, BandFair},
		{74, BandNeedsWork},
		{0, BandNeedsWork},
	}
	for _, tt := range tests {
		if got := QualityBand(tt.score); got != tt.want {
			t.Errorf("QualityBand(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPunctuationConsistencyWarnings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", nil},
		{"consistent cjk", "你好，世界。\n再见，朋友。", nil},
		{"consistent ascii", "Hello, world.\nGoodbye.", nil},
		{"mixed lines counted", "你好，world.\n第二行，也 mixed.", []string{"标点混用 2 处"}},
		{"blank lines ignored", "你好，world.\n\n\n", []string{"标点混用 1 处"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PunctuationConsistencyWarnings(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("warnings = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("warning %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
