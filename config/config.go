package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the stemcount tool.
type Config struct {
	Count   CountConfig   `yaml:"count"`
	Detect  DetectConfig  `yaml:"detect"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// CountConfig holds counting configuration.
type CountConfig struct {
	NgramSize        int      `yaml:"ngram_size"`
	IncludeStopwords bool     `yaml:"include_stopwords"`
	DefaultLanguage  string   `yaml:"default_language"` // Assumed for untagged records; empty means detect
	Includes         []string `yaml:"includes"`
	Excludes         []string `yaml:"excludes"`
}

// DetectConfig holds language detection configuration.
type DetectConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MinConfidence float64 `yaml:"min_confidence"`
}

// ReportConfig holds report output configuration.
type ReportConfig struct {
	Top    int    `yaml:"top"`
	Format string `yaml:"format"` // "table", "json" or "csv"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Count: CountConfig{
			NgramSize:        1,
			IncludeStopwords: false,
			DefaultLanguage:  "",
			Includes:         []string{"**/*.jsonl", "**/*.ndjson", "**/*.csv", "**/*.txt"},
			Excludes:         []string{"**/.git/**", "**/.stemcount/**", "**/node_modules/**"},
		},
		Detect: DetectConfig{
			Enabled:       true,
			MinConfidence: 0.25,
		},
		Report: ReportConfig{
			Top:    20,
			Format: "table",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// stemcount.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try stemcount.yaml in the directory
	path := filepath.Join(dir, "stemcount.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .stemcount/config.yaml
	path = filepath.Join(dir, ".stemcount", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CountsDBPath returns the path to the counts database.
func CountsDBPath(dir string) string {
	return filepath.Join(dir, ".stemcount", "counts.db")
}

// EnsureStateDir ensures the .stemcount directory exists.
func EnsureStateDir(dir string) error {
	stateDir := filepath.Join(dir, ".stemcount")
	return os.MkdirAll(stateDir, 0755)
}
