package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/extract"
)

const cleanSuffix = ".clean"

// IsCleanOutput reports whether path is a file the processor produced.
// Such files are skipped to avoid cleaning our own output in a loop.
func IsCleanOutput(path string) bool {
	return strings.Contains(filepath.Base(path), cleanSuffix+".")
}

// OutputPath returns the destination for a cleaned copy of input. With an
// empty outputDir the cleaned file is written next to the input, so
// "notes.txt" becomes "notes.clean.txt".
func OutputPath(input, outputDir string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + cleanSuffix + ext
	if outputDir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	return filepath.Join(outputDir, name)
}

// Processor cleans changed files into sibling .clean copies.
type Processor struct {
	options   cleaner.Options
	outputDir string
	logger    *zap.Logger
}

// NewProcessor creates a processor. outputDir may be empty to write
// cleaned files next to their inputs.
func NewProcessor(opts cleaner.Options, outputDir string, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{options: opts, outputDir: outputDir, logger: logger}
}

// Process extracts, cleans, and writes the cleaned copy of path.
func (p *Processor) Process(path string) error {
	text, err := extract.FromFile(path)
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	cleaned := cleaner.Clean(text, p.options)
	out := OutputPath(path, p.outputDir)
	if p.outputDir != "" {
		if err := os.MkdirAll(p.outputDir, 0755); err != nil {
			return fmt.Errorf("process %s: %w", path, err)
		}
	}
	if err := os.WriteFile(out, []byte(cleaned+"\n"), 0644); err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	score := cleaner.QualityScore(cleaned)
	p.logger.Info("cleaned file",
		zap.String("input", path),
		zap.String("output", out),
		zap.Int("score", score),
		zap.String("band", cleaner.QualityBand(score)))
	return nil
}

// OnChange adapts Process for use as a watcher callback. Errors are
// logged rather than returned since nothing upstream can act on them.
func (p *Processor) OnChange(path string) {
	if err := p.Process(path); err != nil {
		p.logger.Error("processing failed", zap.String("path", path), zap.Error(err))
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
