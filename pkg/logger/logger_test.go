package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo, FormatJSON)

	l.Debug().Msg("hidden")
	l.Info().Str("type", "Bundle").Msg("registered")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"type":"Bundle"`)
	assert.Contains(t, out, `"message":"registered"`)
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError, FormatConsole)

	l.Warn().Msg("first")
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.Level())
	l.Debug().Msg("second")
	assert.Contains(t, buf.String(), "second")
}

func TestDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo, FormatJSON))
	Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	Disable()
	Error().Msg("silenced")
	assert.NotContains(t, buf.String(), "silenced")
}
