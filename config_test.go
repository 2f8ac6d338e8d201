package main

import (
	"crimson/eval"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crimson.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "prompt: \"crimson> \"\nmax_depth: 100\ncolor: false\n")
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Prompt != "crimson> " {
		t.Errorf("expected prompt=%q, got=%q", "crimson> ", cfg.Prompt)
	}
	if cfg.MaxDepth != 100 {
		t.Errorf("expected max_depth=100, got=%d", cfg.MaxDepth)
	}
	if cfg.Color {
		t.Errorf("expected color=false")
	}
	// untouched keys keep their defaults
	if cfg.ParseCache != defaultConfig().ParseCache {
		t.Errorf("expected parse_cache=%d, got=%d", defaultConfig().ParseCache, cfg.ParseCache)
	}
	if cfg.LogLevel != "warning" {
		t.Errorf("expected log_level=warning, got=%q", cfg.LogLevel)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("missing default config should not be an error, got=%s", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("expected defaults, got=%+v", cfg)
	}
	if _, err := loadConfig(path, true); err == nil {
		t.Errorf("expected an error for a missing explicit config")
	}
}

func TestLoadConfigClampsMaxDepth(t *testing.T) {
	path := writeConfig(t, "max_depth: 100000000\n")
	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.MaxDepth != eval.MaxDepthLimit {
		t.Errorf("expected max_depth=%d, got=%d", eval.MaxDepthLimit, cfg.MaxDepth)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []string{
		"max_depth: [1, 2]\n",
		"max_depth: -1\n",
		"log_level: loud\n",
	}
	for i, content := range tests {
		path := writeConfig(t, content)
		if _, err := loadConfig(path, true); err == nil {
			t.Errorf("tests[%d] (%q): expected an error", i, content)
		}
	}
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"crimson", "-d", "-n", "-c", "x.yaml", "-e", "1 + 2", "a.cr", "b.cr"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !o.debug || !o.noColor {
		t.Errorf("expected -d and -n to be set, got=%+v", o)
	}
	if o.configPath != "x.yaml" || !o.explicit {
		t.Errorf("expected explicit config x.yaml, got=%+v", o)
	}
	if !o.hasExpr || o.expr != "1 + 2" {
		t.Errorf("expected -e \"1 + 2\", got=%+v", o)
	}
	if len(o.files) != 2 || o.files[0] != "a.cr" || o.files[1] != "b.cr" {
		t.Errorf("expected files [a.cr b.cr], got=%v", o.files)
	}

	o, err = parseFlags([]string{"crimson", "-h"})
	if err != nil || o != nil {
		t.Errorf("expected -h to request usage, got=%+v, %v", o, err)
	}

	if _, err := parseFlags([]string{"crimson", "-x"}); err == nil {
		t.Errorf("expected an error for an unknown flag")
	}
}
