package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"golang.org/x/text/language"
)

// Config holds every setting for the confluxer command.
type Config struct {
	LogLevel string `json:"log_level"`

	CorpusFiles    []string `json:"corpus_files"`
	CorpusDatabase string   `json:"corpus_database"` // SQLite data source; empty disables it.
	CorpusQuery    string   `json:"corpus_query"`    // Must select a single text column.
	Language       string   `json:"language"`        // BCP 47 tag used for lowercasing.

	Count     int    `json:"count"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
	Seed      uint64 `json:"seed"` // 0 uses an unseeded, concurrency-safe source.

	ApiAddr string `json:"api_addr"` // Empty runs the one-shot demo instead of the API.
}

// DefaultConfig creates a configuration matching the classic demo: ten names
// of five to twelve characters from a single word list.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		CorpusFiles: []string{"PolishFemaleNames.txt"},
		CorpusQuery: "SELECT name FROM names;",
		Count:       10,
		MinLength:   5,
		MaxLength:   12,
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values. Failing to
// write that file is not fatal. The failure is returned in warnings and the
// defaults are still used.
func LoadConfig(path string) (config *Config, warnings []error, err error) {
	config = DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				warnings = append(warnings, fmt.Errorf("failed to write default config file: %w", err))
			}
			return config, warnings, nil
		}
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err = config.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config file: %w", err)
	}
	return config, nil, nil
}

// Validate checks the config for values that would make generation impossible.
func (c *Config) Validate() error {
	if len(c.CorpusFiles) == 0 && c.CorpusDatabase == "" {
		return errors.New("at least one of corpus_files or corpus_database is required")
	}
	if c.CorpusDatabase != "" && strings.TrimSpace(c.CorpusQuery) == "" {
		return errors.New("corpus_query is required when corpus_database is set")
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.MinLength > c.MaxLength {
		return fmt.Errorf("min_length (%d) must not exceed max_length (%d)", c.MinLength, c.MaxLength)
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", c.Language, err)
		}
	}
	return nil
}

// LanguageTag returns the configured language, or language.Und if none is set.
func (c *Config) LanguageTag() language.Tag {
	if c.Language == "" {
		return language.Und
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

// SlogLevel maps the configured log level to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
