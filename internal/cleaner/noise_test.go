package cleaner

import "testing"

func TestCollapseRepeatedLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"注意：注意：内容", "注意：内容"},
		{"注意：注意：注意：内容", "注意：内容"},
		{"note:note:rest", "note:rest"},
		{"注意：内容", "注意：内容"},
		{"没有冒号的行", "没有冒号的行"},
	}
	for _, tt := range tests {
		if got := collapseRepeatedLabel(tt.input); got != tt.want {
			t.Errorf("collapseRepeatedLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCollapseRepeatedPunct(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"完成！！！", "完成！"},
		{"好。。。", "好。"},
		{"结束? ? ?", "结束?"},
		{"正常句子。", "正常句子。"},
		{"混合！？", "混合！？"},
	}
	for _, tt := range tests {
		if got := collapseRepeatedPunct(tt.input); got != tt.want {
			t.Errorf("collapseRepeatedPunct(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCollapseRepeatedTokens(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"效率，效率，效率", "效率"},
		{"speed, speed", "speed"},
		{"提升效率，提升效率，也提升质量", "提升效率，也提升质量"},
		{"苹果，香蕉，苹果", "苹果，香蕉，苹果"},
		{"单", "单"},
	}
	for _, tt := range tests {
		if got := collapseRepeatedTokens(tt.input); got != tt.want {
			t.Errorf("collapseRepeatedTokens(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCollapseColonRuns(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"目标：A：B：", "目标："},
		{"目标：只有一个值", "目标：只有一个值"},
		{"key:a:b:", "key:"},
	}
	for _, tt := range tests {
		if got := collapseColonRuns(tt.input); got != tt.want {
			t.Errorf("collapseColonRuns(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRemoveRepeatedNoiseSkipsProtectedLines(t *testing.T) {
	input := "x = 1；；\n| a！！ | b |\n完成！！！"
	got := removeRepeatedNoise(input)
	want := "x = 1；；\n| a！！ | b |\n完成！"
	if got != want {
		t.Errorf("removeRepeatedNoise(%q) = %q, want %q", input, got, want)
	}
}
