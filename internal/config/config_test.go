package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROADLOG_DATA_DIR", "")
	t.Setenv("ROADLOG_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if filepath.Base(cfg.DataDir) != ".roadlog" {
		t.Errorf("DataDir = %q, want a ~/.roadlog default", cfg.DataDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ROADLOG_DATA_DIR", "")
	t.Setenv("ROADLOG_LOG_LEVEL", "")

	appDir := filepath.Join(home, ".roadlog")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "data_dir: /srv/roadlog\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/roadlog" {
		t.Errorf("DataDir = %q, want /srv/roadlog", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	appDir := filepath.Join(home, ".roadlog")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ROADLOG_DATA_DIR", "/tmp/override")
	t.Setenv("ROADLOG_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/override" {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want env override", cfg.LogLevel)
	}
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROADLOG_LOG_LEVEL", "chatty")

	if _, err := Load(); err == nil {
		t.Error("unknown log level should be rejected")
	}
}
