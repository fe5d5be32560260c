// Package main is the textpolish CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/config"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/export"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/extract"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/server"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/watcher"
	"github.com/xiaoxiongflippy/AI-project-Text-Correction/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/textpolish/config.yaml"

// loadConfig loads config from path. When path is the default, a config.yaml
// in the current directory takes precedence (for development). A missing
// default config is not an error; built-in defaults apply.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			cfg := &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "clean":
		runClean()
	case "diagnose":
		runDiagnose()
	case "serve":
		runServe()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("textpolish version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// cleanFlags holds the per-run switch overrides shared by clean and diagnose.
type cleanFlags struct {
	text         string
	input        string
	keepMarkdown bool
	keepLines    bool
	removeEmoji  bool
	noIndent     bool
	noTables     bool
}

func (f *cleanFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.text, "text", "", "text to clean, passed directly")
	fs.StringVar(&f.input, "input", "", "input file path (.txt/.md/.pdf/.docx/.xlsx)")
	fs.BoolVar(&f.keepMarkdown, "keep-markdown", false, "keep Markdown markers")
	fs.BoolVar(&f.keepLines, "keep-lines", false, "keep original line breaks")
	fs.BoolVar(&f.removeEmoji, "remove-emoji", false, "remove emoji")
	fs.BoolVar(&f.noIndent, "no-indent", false, "disable full-width paragraph indent")
	fs.BoolVar(&f.noTables, "no-tables", false, "flatten tables into bullet lines")
}

func (f *cleanFlags) options(base cleaner.Options) cleaner.Options {
	opts := base
	if f.keepMarkdown {
		opts.RemoveMarkdown = false
	}
	if f.keepLines {
		opts.MergeWrappedLines = false
	}
	if f.removeEmoji {
		opts.RemoveEmoji = true
	}
	if f.noIndent {
		opts.IndentParagraph = false
	}
	if f.noTables {
		opts.KeepTables = false
	}
	return opts
}

// sourceText resolves the input text: --text wins, then --input, then stdin.
func (f *cleanFlags) sourceText() (string, error) {
	if f.text != "" {
		return f.text, nil
	}
	if f.input != "" {
		return extract.FromFile(f.input)
	}
	fmt.Fprintln(os.Stderr, "粘贴待清理文本后以 Ctrl-D 结束：")
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}

func runClean() {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	var flags cleanFlags
	flags.register(fs)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	output := fs.String("output", "", "output file path")
	exportWord := fs.String("export-word", "", "also export to a Word file (.docx)")
	exportPDF := fs.String("export-pdf", "", "also export to a PDF file (.pdf)")
	score := fs.Bool("score", false, "print the quality report to stderr")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	source, err := flags.sourceText()
	if err != nil {
		fmt.Printf("Failed to read input: %v\n", err)
		os.Exit(1)
	}

	cleaned := cleaner.Clean(source, flags.options(cfg.Clean.Options()))

	if *output != "" {
		if err := os.WriteFile(*output, []byte(cleaned+"\n"), 0644); err != nil {
			fmt.Printf("Failed to write output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("清理完成，已写入: %s\n", *output)
	} else {
		fmt.Println(cleaned)
	}

	if *score {
		printQualityReport(os.Stderr, cleaned)
	}

	if *exportWord != "" {
		if err := export.ToWord(cleaned, *exportWord); err != nil {
			fmt.Println(err)
		} else {
			fmt.Printf("Word 导出成功: %s\n", *exportWord)
		}
	}
	if *exportPDF != "" {
		if err := export.ToPDF(cleaned, *exportPDF); err != nil {
			fmt.Println(err)
		} else {
			fmt.Printf("PDF 导出成功: %s\n", *exportPDF)
		}
	}
}

func runDiagnose() {
	fs := flag.NewFlagSet("diagnose", flag.ExitOnError)
	var flags cleanFlags
	flags.register(fs)
	_ = fs.Parse(os.Args[2:])

	source, err := flags.sourceText()
	if err != nil {
		fmt.Printf("Failed to read input: %v\n", err)
		os.Exit(1)
	}
	printQualityReport(os.Stdout, source)
}

func printQualityReport(w io.Writer, text string) {
	score := cleaner.QualityScore(text)
	fmt.Fprintf(w, "质量评分: %d（%s）\n", score, cleaner.QualityBand(score))
	for _, warning := range cleaner.PunctuationConsistencyWarnings(text) {
		fmt.Fprintf(w, "提示: %s\n", warning)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (request payload previews, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	srv := server.NewServer(cfg.Clean.Options(), &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	outputDir := fs.String("output-dir", "", "directory for cleaned copies (default: next to each input)")
	debug := fs.Bool("debug", false, "enable debug logging (file events, debouncing, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dirs := cfg.Watch.Directories
	if fs.NArg() > 0 {
		dirs = fs.Args()
	}
	if len(dirs) == 0 {
		fmt.Println("No directories to watch: pass them as arguments or set watch.directories in the config")
		os.Exit(1)
	}
	for i, d := range dirs {
		if abs, absErr := filepath.Abs(d); absErr == nil {
			dirs[i] = abs
		}
	}

	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	outDir := cfg.Watch.OutputDir
	if *outputDir != "" {
		outDir = *outputDir
	}

	processor := watcher.NewProcessor(cfg.Clean.Options(), outDir, logger)
	w := watcher.NewWatcher(
		dirs,
		cfg.Watch.Extensions,
		cfg.Watch.RecursiveOrDefault(),
		processor.OnChange,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer w.Stop()

	logger.Info("watching", zap.Strings("directories", dirs))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
}

func printUsage() {
	fmt.Println(`textpolish - cleanup tool for AI-generated Chinese text

Usage:
  textpolish clean [flags]       Clean text from --text, --input, or stdin
  textpolish diagnose [flags]    Score text quality without cleaning
  textpolish serve [flags]       Start the HTTP API
  textpolish watch [flags] [dir ...]  Clean files in directories as they change
  textpolish version             Show version
  textpolish help                Show this help

Clean Flags:
  --text string          Text to clean, passed directly
  --input string         Input file path (.txt/.md/.pdf/.docx/.xlsx)
  --output string        Output file path (default: print to stdout)
  --keep-markdown        Keep Markdown markers
  --keep-lines           Keep original line breaks
  --remove-emoji         Remove emoji
  --no-indent            Disable full-width paragraph indent
  --no-tables            Flatten tables into bullet lines
  --export-word string   Also export to a Word file (requires an export build)
  --export-pdf string    Also export to a PDF file (requires an export build)
  --score                Print the quality report to stderr
  --config string        Config file path

Serve Flags:
  --config string    Config file path (default: /usr/local/etc/textpolish/config.yaml)
  --debug            Enable debug logging

Watch Flags:
  --config string      Config file path
  --output-dir string  Directory for cleaned copies (default: next to each input)
  --debug              Enable debug logging

Examples:
  textpolish clean --text "# 标题\n内容"
  textpolish clean --input draft.docx --output draft.txt
  textpolish clean --input draft.md --no-indent --score
  textpolish diagnose --input draft.txt
  textpolish serve
  textpolish watch ~/notes`)
}
