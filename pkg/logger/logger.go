// Package logger provides the process logger for the model library and CLI.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level represents the logging level.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "disabled"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
// Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error", "fatal", "panic":
		return LevelError
	case "none", "off", "disabled":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Format selects how log lines are written.
type Format string

// Output formats.
const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Logger wraps a zerolog.Logger.
type Logger struct {
	mu     sync.RWMutex
	zl     zerolog.Logger
	level  Level
	output io.Writer
	format Format
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stderr, LevelInfo, FormatConsole)
)

// Default returns the default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// New creates a new logger writing to output.
func New(output io.Writer, level Level, format Format) *Logger {
	l := &Logger{level: level, output: output, format: format}
	l.rebuild()
	return l
}

func (l *Logger) rebuild() {
	w := l.output
	if l.format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: l.output, TimeFormat: time.TimeOnly, NoColor: true}
	}
	l.zl = zerolog.New(w).Level(l.level.zerolog()).With().Timestamp().Str("component", "fhirmodel").Logger()
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// Zerolog returns the underlying zerolog logger.
func (l *Logger) Zerolog() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zl := l.zl
	return &zl
}

// Debug starts a debug level event.
func (l *Logger) Debug() *zerolog.Event { return l.Zerolog().Debug() }

// Info starts an info level event.
func (l *Logger) Info() *zerolog.Event { return l.Zerolog().Info() }

// Warn starts a warning level event.
func (l *Logger) Warn() *zerolog.Event { return l.Zerolog().Warn() }

// Error starts an error level event.
func (l *Logger) Error() *zerolog.Event { return l.Zerolog().Error() }

// Package-level convenience functions.

// Debug starts a debug level event on the default logger.
func Debug() *zerolog.Event { return Default().Debug() }

// Info starts an info level event on the default logger.
func Info() *zerolog.Event { return Default().Info() }

// Warn starts a warning level event on the default logger.
func Warn() *zerolog.Event { return Default().Warn() }

// Error starts an error level event on the default logger.
func Error() *zerolog.Event { return Default().Error() }

// SetLevel sets the level of the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// SetOutput sets the output of the default logger.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// Disable disables all logging.
func Disable() {
	Default().SetLevel(LevelNone)
}
