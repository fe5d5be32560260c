package cleaner

import (
	"strings"
	"testing"
)

func TestStripMarkdownInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"atx heading", "### 标题", "标题"},
		{"blockquote", "> 引用内容", "引用内容"},
		{"horizontal rule", "---", ""},
		{"inline code", "运行 `make build` 即可", "运行 make build 即可"},
		{"bold", "这是**重点**内容", "这是重点内容"},
		{"bold underscore", "__强调__文字", "强调文字"},
		{"italic", "*斜体*与_下划线_", "斜体与下划线"},
		{"image dropped", "前![图片说明](http://img.example/a.png)后", "前后"},
		{"link unwrapped", "见[示例站](http://a.example)说明", "见示例站说明"},
		{"bullet marker", "- 第一项\n* 第二项", "• 第一项\n• 第二项"},
		{"ordered marker", "1) 第一步\n2. 第二步", "1. 第一步\n2. 第二步"},
		{"emphasis before bullet detection", "- **加粗项**", "• 加粗项"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripMarkdownInline(tt.input); got != tt.want {
				t.Errorf("stripMarkdownInline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripMarkdownProtectsCodeAndTables(t *testing.T) {
	input := strings.Join([]string{
		"## 说明",
		"```",
		"result = **not emphasis**",
		"```",
		"| **a** | b |",
		"正文**加粗**结束",
	}, "\n")
	got := stripMarkdown(input)

	if !strings.Contains(got, "result = **not emphasis**") {
		t.Errorf("fenced content was rewritten: %q", got)
	}
	if !strings.Contains(got, "| **a** | b |") {
		t.Errorf("table row was rewritten: %q", got)
	}
	if strings.Contains(got, "## 说明") {
		t.Errorf("heading marker not stripped: %q", got)
	}
	if !strings.Contains(got, "正文加粗结束") {
		t.Errorf("free span emphasis not unwrapped: %q", got)
	}
}

func TestIsHorizontalRuleLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"---", true},
		{"***", true},
		{"- - -", true},
		{"___", true},
		{"--", false},
		{"-*-", false},
		{"- item", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isHorizontalRuleLine(tt.line); got != tt.want {
			t.Errorf("isHorizontalRuleLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
