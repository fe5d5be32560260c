// Package config provides configuration loading and structs for the text
// correction tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xiaoxiongflippy/AI-project-Text-Correction/internal/cleaner"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Server ServerConfig `yaml:"server"`
	Clean  CleanConfig  `yaml:"clean"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CleanConfig holds the cleaning pass toggles. Pointers distinguish "unset"
// from an explicit false, so a profile file only needs to name the toggles
// it changes.
type CleanConfig struct {
	RemoveMarkdown       *bool `yaml:"remove_markdown"`
	NormalizePunctuation *bool `yaml:"normalize_punctuation"`
	NormalizeWhitespace  *bool `yaml:"normalize_whitespace"`
	MergeWrappedLines    *bool `yaml:"merge_wrapped_lines"`
	RemoveEmoji          *bool `yaml:"remove_emoji"`
	IndentParagraph      *bool `yaml:"indent_paragraph"`
	KeepTables           *bool `yaml:"keep_tables"`
}

// Options resolves the profile against the default cleaning options.
func (c *CleanConfig) Options() cleaner.Options {
	opts := cleaner.DefaultOptions()
	setIf(&opts.RemoveMarkdown, c.RemoveMarkdown)
	setIf(&opts.NormalizePunctuation, c.NormalizePunctuation)
	setIf(&opts.NormalizeWhitespace, c.NormalizeWhitespace)
	setIf(&opts.MergeWrappedLines, c.MergeWrappedLines)
	setIf(&opts.RemoveEmoji, c.RemoveEmoji)
	setIf(&opts.IndentParagraph, c.IndentParagraph)
	setIf(&opts.KeepTables, c.KeepTables)
	return opts
}

func setIf(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// WatchConfig holds directory watch settings.
type WatchConfig struct {
	Directories []string `yaml:"directories"`
	Extensions  []string `yaml:"extensions"`
	OutputDir   string   `yaml:"output_dir"`
	Recursive   *bool    `yaml:"recursive"`
}

// RecursiveOrDefault returns whether to watch recursively; defaults to true when unset.
func (w *WatchConfig) RecursiveOrDefault() bool {
	if w.Recursive != nil {
		return *w.Recursive
	}
	return true
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	for i := range cfg.Watch.Directories {
		cfg.Watch.Directories[i] = expandPath(cfg.Watch.Directories[i], configDir)
	}
	if cfg.Watch.OutputDir != "" {
		cfg.Watch.OutputDir = expandPath(cfg.Watch.OutputDir, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Watch.Extensions == nil {
		cfg.Watch.Extensions = []string{".txt", ".md"}
	}
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
