package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognitedata/neat-imf-importer/pkg/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(filepath.Join(writeConfig(t, "{}"), "neatimf.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Import.Language)
	assert.Equal(t, "imf_space", cfg.Import.Space)
	assert.Equal(t, "IMFDataModel", cfg.Import.ExternalID)
	assert.Equal(t, "v1", cfg.Import.Version)
	assert.False(t, cfg.Import.RawIdentifiers)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Directory)
	assert.False(t, cfg.Output.Compress)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 0, cfg.Observability.PrometheusPort)
}

func TestLoadConfig_FromFile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
import:
  language: "no"
  space: pump_lib
  raw_identifiers: true
output:
  format: json
  compress: true
logging:
  level: debug
  json: true
observability:
  prometheus_port: 9091
`)

	cfg, err := config.LoadConfig(filepath.Join(dir, "neatimf.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "no", cfg.Import.Language)
	assert.Equal(t, "pump_lib", cfg.Import.Space)
	assert.True(t, cfg.Import.RawIdentifiers)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.Compress)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, 9091, cfg.Observability.PrometheusPort)

	// Unset values still fall back to defaults.
	assert.Equal(t, "IMFDataModel", cfg.Import.ExternalID)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidOutputFormat(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "output:\n  format: xml\n")

	_, err := config.LoadConfig(filepath.Join(dir, "neatimf.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidOutputFormat)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "logging:\n  level: verbose\n")

	_, err := config.LoadConfig(filepath.Join(dir, "neatimf.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "observability:\n  prometheus_port: 70000\n")

	_, err := config.LoadConfig(filepath.Join(dir, "neatimf.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidPort)
}

func TestLoadConfig_EmptyLanguage(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "import:\n  language: \"\"\n")

	_, err := config.LoadConfig(filepath.Join(dir, "neatimf.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidLanguage)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "anything", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			cfg := config.LoggingConfig{Level: tt.level}
			assert.Equal(t, tt.want, cfg.SlogLevel())
		})
	}
}

// writeConfig writes content as neatimf.yaml into a fresh temp dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neatimf.yaml"), []byte(content), 0o600))

	return dir
}
