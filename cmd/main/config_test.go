package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if _, err = os.Stat(path); err != nil {
		t.Errorf("expected default config file to be written: %v", err)
	}

	// Loading the written file must give the same config back.
	reloaded, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() of written defaults failed: %v", err)
	}
	if diff := cmp.Diff(config, reloaded); diff != "" {
		t.Errorf("reloaded config mismatch (-written +reloaded):\n%s", diff)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"corpus_files": ["a.txt", "b.txt"], "count": 3, "seed": 9, "language": "tr"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a.txt", "b.txt"}, config.CorpusFiles); diff != "" {
		t.Errorf("corpus files mismatch (-want +got):\n%s", diff)
	}
	if config.Count != 3 || config.Seed != 9 {
		t.Errorf("got unexpected config: %+v", config)
	}
	// Unset fields keep their defaults.
	if config.MinLength != 5 || config.MaxLength != 12 {
		t.Errorf("expected default lengths, got [%d, %d]", config.MinLength, config.MaxLength)
	}
	if config.LanguageTag() != language.Turkish {
		t.Errorf("expected Turkish language tag, got %v", config.LanguageTag())
	}
}

func TestLoadConfigUnwritableDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing_dir", "config.json")

	config, warnings, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), config); diff != "" {
		t.Errorf("expected defaults when the file cannot be written (-want +got):\n%s", diff)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0].Error(), "failed to write default config file") {
		t.Errorf("unexpected warning: %v", warnings[0])
	}
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name          string
		data          string
		errorContains string
	}{
		{name: "Malformed JSON", data: `{"count": `, errorContains: "failed to parse"},
		{name: "No corpus", data: `{"corpus_files": []}`, errorContains: "corpus_files or corpus_database"},
		{name: "Database without query", data: `{"corpus_database": "x.db", "corpus_query": " "}`, errorContains: "corpus_query"},
		{name: "Negative count", data: `{"count": -1}`, errorContains: "count"},
		{name: "Inverted lengths", data: `{"min_length": 9, "max_length": 4}`, errorContains: "min_length"},
		{name: "Bad language", data: `{"language": "not a tag!"}`, errorContains: "invalid language"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected an error but got none")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("expected error to contain %q, but got %q", tc.errorContains, err.Error())
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for level, want := range testCases {
		config := &Config{LogLevel: level}
		if got := config.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}
