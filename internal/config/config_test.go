package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLogConfig_NoFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(dir)

	cfg, err := LoadLogConfig("crawler", "")
	if err != nil {
		t.Fatalf("LoadLogConfig: %v", err)
	}
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Level, "info")
	}
	if cfg.LogFile != "crawler.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "crawler.log")
	}
}

func TestLoadLogConfig_ExplicitFileOverridesLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadLogConfig("indexer", path)
	if err != nil {
		t.Fatalf("LoadLogConfig: %v", err)
	}
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Level, "debug")
	}
}
