package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config must not be an error: %v", err)
	}
	if cfg.Dashboard.Data != nil || cfg.Dashboard.Segments != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[dashboard]
data = "orders.csv"
from = "2024-01-01"
segments = ["Consumer", "Corporate"]
granularity = "daily"
top = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Dashboard.Data == nil || *cfg.Dashboard.Data != "orders.csv" {
		t.Fatalf("unexpected data: %v", cfg.Dashboard.Data)
	}
	if cfg.Dashboard.From == nil || *cfg.Dashboard.From != "2024-01-01" {
		t.Fatalf("unexpected from: %v", cfg.Dashboard.From)
	}
	if cfg.Dashboard.Segments == nil || len(*cfg.Dashboard.Segments) != 2 {
		t.Fatalf("unexpected segments: %v", cfg.Dashboard.Segments)
	}
	if cfg.Dashboard.Granularity == nil || *cfg.Dashboard.Granularity != "daily" {
		t.Fatalf("unexpected granularity: %v", cfg.Dashboard.Granularity)
	}
	if cfg.Dashboard.Top == nil || *cfg.Dashboard.Top != 5 {
		t.Fatalf("unexpected top: %v", cfg.Dashboard.Top)
	}
	if cfg.Dashboard.DB != nil {
		t.Fatalf("unset fields must stay nil, got %v", cfg.Dashboard.DB)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "salesdash", "config.toml") {
		t.Fatalf("unexpected config path: %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "salesdash", "orders.db") {
		t.Fatalf("unexpected db path: %q", got)
	}
	if got := DefaultFeedbackPath(); got != filepath.Join("/tmp/data", "salesdash", "feedback.csv") {
		t.Fatalf("unexpected feedback path: %q", got)
	}
}
