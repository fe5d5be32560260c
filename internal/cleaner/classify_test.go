package cleaner

import (
	"strings"
	"testing"
)

func TestDetectCodeLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  map[int]bool
	}{
		{
			name:  "fenced block content is code, delimiters are not",
			lines: []string{"```python", "x = 1", "# 注释，带中文标点", "```", "after"},
			want:  map[int]bool{1: true, 2: true},
		},
		{
			name:  "strong assignment line",
			lines: []string{"total = a + b"},
			want:  map[int]bool{0: true},
		},
		{
			name:  "import and def lines",
			lines: []string{"import os", "def run():"},
			want:  map[int]bool{0: true, 1: true},
		},
		{
			name:  "decorator and bare call",
			lines: []string{"@app.route", "main()"},
			want:  map[int]bool{0: true, 1: true},
		},
		{
			name:  "symbol heuristic suppressed by CJK punctuation",
			lines: []string{"配置项【重要】 = 启用，详见文档"},
			want:  map[int]bool{},
		},
		{
			name:  "weak comment promoted next to code",
			lines: []string{"# helper", "value = compute()"},
			want:  map[int]bool{0: true, 1: true},
		},
		{
			name:  "weak line promoted across one blank line",
			lines: []string{"result = f(x)", "", "    print(result)"},
			want:  map[int]bool{0: true, 2: true},
		},
		{
			name:  "isolated weak line stays prose",
			lines: []string{"井号开头", "# 这是标题风格的行", "普通文字"},
			want:  map[int]bool{},
		},
		{
			name:  "prose stays prose",
			lines: []string{"这是一段普通的中文说明文字。", "第二行继续。"},
			want:  map[int]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectCodeLines(tt.lines)
			for i := range tt.lines {
				if got[i] != tt.want[i] {
					t.Errorf("line %d %q: code = %v, want %v", i, tt.lines[i], got[i], tt.want[i])
				}
			}
		})
	}
}

// Adding CJK punctuation to a symbol-bearing line must keep it out of the
// weak set entirely, so propagation can never promote it.
func TestClassifierCJKHintSuppression(t *testing.T) {
	lines := []string{"x = 1", "data[0] = 2；见上文，说明"}
	code := detectCodeLines(lines)
	if !code[0] {
		t.Fatalf("line 0 should be code")
	}
	if code[1] {
		t.Errorf("CJK punctuation hint should suppress the symbol heuristic")
	}
}

func TestClassifyLines(t *testing.T) {
	lines := []string{
		"x = 1",
		"",
		"| a | b |",
		"| --- | --- |",
		"- item one",
		"目标：",
		"这是一段普通文字。",
	}
	want := []LineRole{
		RoleCode, RoleBlank, RoleTableRow, RoleTableSeparator,
		RoleListItem, RoleHeadingLike, RoleParagraph,
	}
	got := classifyLines(lines)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d %q: role = %v, want %v", i, lines[i], got[i], want[i])
		}
	}
}

func TestIsHeadingLike(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"目标：", true},
		{"第一步：准备环境", true},
		{"键：值：另一个值", true},
		{"这一行以句号结尾，不是标题。", false},
		{"- 列表项：带冒号", false},
		{"| a | b |", false},
		{strings.Repeat("长", 31) + "：", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isHeadingLike(tt.line); got != tt.want {
			t.Errorf("isHeadingLike(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
