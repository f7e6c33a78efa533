// Package config resolves where roadlog keeps its data and how chatty the
// diagnostics are. Values come from defaults, then an optional
// ~/.roadlog/config.yaml, then ROADLOG_* environment variables, later
// sources winning.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config carries the resolved application configuration.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
}

// Load resolves the configuration. A missing config file is not an error;
// a malformed one or an unknown log level is.
func Load() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	appDir := filepath.Join(homeDir, ".roadlog")

	cfg := Config{
		DataDir:  appDir,
		LogLevel: "warn",
	}

	path := filepath.Join(appDir, configFileName)
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		if fileCfg.DataDir != "" {
			cfg.DataDir = fileCfg.DataDir
		}
		if fileCfg.LogLevel != "" {
			cfg.LogLevel = fileCfg.LogLevel
		}
	}

	if dir := strings.TrimSpace(os.Getenv("ROADLOG_DATA_DIR")); dir != "" {
		cfg.DataDir = dir
	}
	if level := strings.TrimSpace(os.Getenv("ROADLOG_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	return cfg, nil
}

// Logger builds a logger at the configured level.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}
