package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input     string
		outputDir string
		want      string
	}{
		{filepath.Join("docs", "notes.txt"), "", filepath.Join("docs", "notes.clean.txt")},
		{filepath.Join("docs", "notes.md"), "out", filepath.Join("out", "notes.clean.md")},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.outputDir); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.outputDir, got, tt.want)
		}
	}
}

func TestIsCleanOutput(t *testing.T) {
	if !IsCleanOutput("notes.clean.txt") {
		t.Error("clean output not recognized")
	}
	if IsCleanOutput("notes.txt") {
		t.Error("plain input flagged as clean output")
	}
}

func TestProcessorProcess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "draft.txt")
	if err := os.WriteFile(input, []byte("# 标题\n这是内容。"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewProcessor(cleaner.DefaultOptions(), "", nil)
	if err := p.Process(input); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "draft.clean.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "#") {
		t.Errorf("markdown not stripped: %q", out)
	}
}

func TestWatcherCleansChangedFile(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var changed []string
	onChange := func(path string) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	}

	w := NewWatcher([]string{dir}, []string{".txt"}, true, onChange, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("内容"), 0644); err != nil {
		t.Fatal(err)
	}
	// Outside the extension filter, must not trigger.
	if err := os.WriteFile(filepath.Join(dir, "b.log"), []byte("内容"), 0644); err != nil {
		t.Fatal(err)
	}
	// Looks like our own output, must be skipped.
	if err := os.WriteFile(filepath.Join(dir, "a.clean.txt"), []byte("内容"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		mu.Lock()
		n := len(changed)
		mu.Unlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(changed) == 0 {
		t.Fatal("no change callback fired")
	}
	for _, p := range changed {
		if filepath.Base(p) != "a.txt" {
			t.Errorf("unexpected callback for %q", p)
		}
	}
}
