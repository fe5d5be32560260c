package export

import (
	"testing"
)

func TestIsListLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"• 第一项", true},
		{"- 第二项", true},
		{"1. 有序项", true},
		{"2) 有序项", true},
		{"（1）全角编号", true},
		{"  • 缩进的项", true},
		{"普通段落", false},
		{"10000. 序号太长", false},
		{"1.无空格", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsListLine(tt.line); got != tt.want {
			t.Errorf("IsListLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSplitLineStyle(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantStyle LineStyle
		wantValue string
	}{
		{"blank", "   ", StyleBlank, ""},
		{"empty", "", StyleBlank, ""},
		{"list", "• 项目内容", StyleList, "• 项目内容"},
		{"paragraph", "　　正文内容", StyleParagraph, "　　正文内容"},
		{"trailing space trimmed", "正文  ", StyleParagraph, "正文"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, value := SplitLineStyle(tt.line)
			if style != tt.wantStyle || value != tt.wantValue {
				t.Errorf("SplitLineStyle(%q) = (%v, %q), want (%v, %q)",
					tt.line, style, value, tt.wantStyle, tt.wantValue)
			}
		})
	}
}
