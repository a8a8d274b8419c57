// Package appconfig manages genssh's user configuration file.
package appconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/treykane/genssh/internal/util"
	"gopkg.in/yaml.v3"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds application-level configuration.
type Config struct {
	Output       string `yaml:"output"`
	LogLevel     string `yaml:"log_level"`
	RedactErrors bool   `yaml:"redact_errors"`
	History      bool   `yaml:"history"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Output:       util.DefaultOutputFile,
		LogLevel:     LogLevelWarn,
		RedactErrors: true,
		History:      true,
	}
}

// ConfigDir returns the application config directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/genssh.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "genssh"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", "genssh"), nil
}

// FilePath returns the full path to config.yaml.
func FilePath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Load reads config.yaml from the config directory.
// If the file doesn't exist, creates it with defaults.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return cfg, Save(cfg)
		}
		return Default(), err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return normalize(cfg), nil
}

// Save writes config to config.yaml.
func Save(cfg Config) error {
	path, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// SlogLevel maps a log_level value to a slog.Level. Unknown values map to warn.
func SlogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func normalize(cfg Config) Config {
	cfg.Output = strings.TrimSpace(util.DefaultString(cfg.Output, util.DefaultOutputFile))
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	default:
		cfg.LogLevel = LogLevelWarn
	}
	return cfg
}
