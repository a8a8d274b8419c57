package appconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = os.Stat(filepath.Join(xdg, "genssh", "config.yaml"))
	require.NoError(t, err)
}

func TestLoad_ReadsValues(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeConfig(t, xdg, "output: hosts/prod.json\nlog_level: DEBUG\nredact_errors: false\nhistory: false\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "hosts/prod.json", cfg.Output)
	require.Equal(t, LogLevelDebug, cfg.LogLevel)
	require.False(t, cfg.RedactErrors)
	require.False(t, cfg.History)
}

func TestLoad_NormalizesInvalidValues(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeConfig(t, xdg, strings.Join([]string{
		"output: '   '",
		"log_level: loud",
		"",
	}, "\n"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ssh.json", cfg.Output)
	require.Equal(t, LogLevelWarn, cfg.LogLevel)
	require.True(t, cfg.RedactErrors)
}

func TestLoad_MalformedYAML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeConfig(t, xdg, "output: [unterminated\n")

	cfg, err := Load()
	require.Error(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, SlogLevel("debug"))
	require.Equal(t, slog.LevelInfo, SlogLevel(" Info "))
	require.Equal(t, slog.LevelError, SlogLevel("error"))
	require.Equal(t, slog.LevelWarn, SlogLevel("bogus"))
}

func writeConfig(t *testing.T, xdg, content string) {
	t.Helper()
	dir := filepath.Join(xdg, "genssh")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}
