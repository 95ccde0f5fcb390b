package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/cache"
	"github.com/gofhir/model/pkg/logger"
	"github.com/gofhir/model/pkg/validation"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "text", cfg.Output)
	assert.True(t, cfg.ReferenceTypeChecks)
	assert.True(t, cfg.ControlCharacterChecks)
	assert.Equal(t, validation.DefaultMaxStringLength, cfg.MaxStringLength)
	assert.Equal(t, cache.DefaultCapacity, cfg.ExpressionCacheSize)
	assert.False(t, cfg.JSONOutput())
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FHIRMODEL_OUTPUT", "json")
	t.Setenv("FHIRMODEL_REFERENCE_TYPE_CHECKS", "false")
	t.Setenv("FHIRMODEL_MAX_STRING_LENGTH", "100")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.JSONOutput())
	assert.False(t, cfg.ReferenceTypeChecks)
	assert.Equal(t, 100, cfg.MaxStringLength)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fhirmodel.yaml"), []byte(
		"log_level: debug\npackage_dir: /tmp/r4\ncontrol_character_checks: false\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/r4", cfg.PackageDir)
	assert.False(t, cfg.ControlCharacterChecks)

	t.Setenv("FHIRMODEL_LOG_LEVEL", "warn")
	cfg, err = Load(filepath.Join(dir, "fhirmodel.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FHIRMODEL_OUTPUT", "xml")

	_, err := Load("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Output: "text", LogFormat: "console"}, false},
		{"json upper case", Config{Output: "JSON", LogFormat: "JSON"}, false},
		{"bad output", Config{Output: "xml", LogFormat: "console"}, true},
		{"bad log format", Config{Output: "text", LogFormat: "logfmt"}, true},
		{"negative max length", Config{Output: "text", LogFormat: "console", MaxStringLength: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{MaxStringLength: 10, ExpressionCacheSize: 8, ControlCharacterChecks: true}

	o := fhirmodel.DefaultOptions()
	for _, opt := range cfg.Options() {
		opt(o)
	}
	assert.False(t, o.ReferenceTypeChecks)
	assert.True(t, o.ControlCharacterChecks)
	assert.Equal(t, 10, o.MaxStringLength)
	assert.Equal(t, 8, o.ExpressionCacheSize)
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := (&Config{LogLevel: "warn", LogFormat: "json"}).Logger(&buf)
	assert.Equal(t, logger.LevelWarn, l.Level())

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
